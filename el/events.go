package el

// On attaches a handler for the given event name. Handlers are ordinary
// props under "on"+event; the reconciler writes them onto the host node and
// the host dispatches them. A handler is either func() or, for events
// carrying a value (input, change), func(string).
func On(event string, handler any) Attr {
	return Attr{Key: "on" + event, Value: handler}
}

func OnClick(handler func()) Attr  { return On("click", handler) }
func OnSubmit(handler func()) Attr { return On("submit", handler) }

func OnInput(handler func(value string)) Attr   { return On("input", handler) }
func OnChange(handler func(value string)) Attr  { return On("change", handler) }
func OnKeyDown(handler func(value string)) Attr { return On("keydown", handler) }
