// Package demo holds the sample components mounted by the o serve command.
package demo

import (
	"github.com/zserge/o/el"
	"github.com/zserge/o/pkg/hooks"
	"github.com/zserge/o/pkg/vdom"
)

// Apps maps demo names to their root components.
var Apps = map[string]vdom.ComponentFunc{
	"counter": Counter,
	"todos":   TodoList,
}

// Counter is a click counter backed by a single state hook.
func Counter(ctx *hooks.Ctx, props vdom.Props, children []*vdom.VNode) *vdom.VNode {
	count, setCount := hooks.UseState(ctx, 0)
	return el.Div(el.Class("counter"),
		el.H1(el.Textf("%d", count)),
		el.Button(el.OnClick(func() { setCount(count + 1) }), "+1"),
		el.Button(el.OnClick(func() { setCount(0) }), "Reset"),
	)
}

type todoAction struct {
	op    string // "add", "del", "toggle"
	title string
	index int
}

type todoItem struct {
	Title string
	Done  bool
}

func todoReducer(items []todoItem, a todoAction) []todoItem {
	switch a.op {
	case "add":
		return append(append([]todoItem(nil), items...), todoItem{Title: a.title})
	case "del":
		out := append([]todoItem(nil), items[:a.index]...)
		return append(out, items[a.index+1:]...)
	case "toggle":
		out := append([]todoItem(nil), items...)
		out[a.index].Done = !out[a.index].Done
		return out
	}
	return items
}

// TodoList is a todo list backed by a reducer hook, with a state hook for
// the input draft.
func TodoList(ctx *hooks.Ctx, props vdom.Props, children []*vdom.VNode) *vdom.VNode {
	items, dispatch := hooks.UseReducer(ctx, todoReducer, []todoItem(nil))
	draft, setDraft := hooks.UseState(ctx, "")

	return el.Div(el.Class("todos"),
		el.H1("Todos"),
		el.Div(
			el.Input(el.Type("text"), el.Value(draft), el.Placeholder("What needs doing?"),
				el.OnInput(func(v string) { setDraft(v) })),
			el.Button(el.OnClick(func() {
				if draft != "" {
					dispatch(todoAction{op: "add", title: draft})
					setDraft("")
				}
			}), "Add"),
		),
		el.Ul(el.Map(indexed(items), func(it indexedItem) *el.VNode {
			// Host props are never removed once written, so the style is
			// always rendered and only its value varies.
			return el.Li(
				el.Span(el.StyleAttr(strike(it.item.Done)), it.item.Title),
				el.Button(el.OnClick(func() { dispatch(todoAction{op: "toggle", index: it.index}) }), "Toggle"),
				el.Button(el.OnClick(func() { dispatch(todoAction{op: "del", index: it.index}) }), "Delete"),
			)
		})),
	)
}

func strike(done bool) string {
	if done {
		return "text-decoration: line-through"
	}
	return ""
}

type indexedItem struct {
	index int
	item  todoItem
}

func indexed(items []todoItem) []indexedItem {
	out := make([]indexedItem, len(items))
	for i, it := range items {
		out[i] = indexedItem{index: i, item: it}
	}
	return out
}
