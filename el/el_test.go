package el

import (
	"testing"

	"github.com/zserge/o/pkg/hooks"
	"github.com/zserge/o/pkg/vdom"
)

func TestESplitsAttrsAndChildren(t *testing.T) {
	n := E("div", ID("app"), Class("a", "b"), Span("x"), "text", nil)
	if n.Tag != "div" {
		t.Errorf("tag = %q", n.Tag)
	}
	if n.Props["id"] != "app" {
		t.Errorf("id = %v", n.Props["id"])
	}
	if n.Props["class"] != "a b" {
		t.Errorf("class = %v", n.Props["class"])
	}
	if len(n.Children) != 2 {
		t.Fatalf("children = %d, want 2", len(n.Children))
	}
	if n.Children[0].Tag != "span" {
		t.Errorf("first child tag = %q", n.Children[0].Tag)
	}
	if n.Children[1].Kind != vdom.KindText || n.Children[1].Text != "text" {
		t.Errorf("second child = %+v", n.Children[1])
	}
}

func TestEAttrSlice(t *testing.T) {
	shared := []Attr{Type("text"), Placeholder("name")}
	n := Input(shared, Value("v"))
	if n.Props["type"] != "text" || n.Props["placeholder"] != "name" || n.Props["value"] != "v" {
		t.Errorf("props = %v", n.Props)
	}
}

func TestEmptyAttrIgnored(t *testing.T) {
	n := Div(Attr{}, "x")
	if _, ok := n.Props[""]; ok {
		t.Error("empty attr must not become a prop")
	}
	if len(n.Children) != 1 {
		t.Errorf("children = %d, want 1", len(n.Children))
	}
}

func TestKeyAttr(t *testing.T) {
	n := Li(Key("row-7"), "x")
	if n.Key != "row-7" {
		t.Errorf("key = %q", n.Key)
	}
}

func TestEventAttrs(t *testing.T) {
	clicked := false
	n := Button(OnClick(func() { clicked = true }), "go")
	h, ok := n.Props["onclick"].(func())
	if !ok {
		t.Fatalf("onclick = %T", n.Props["onclick"])
	}
	h()
	if !clicked {
		t.Error("handler did not fire")
	}

	var got string
	in := Input(OnInput(func(v string) { got = v }))
	in.Props["oninput"].(func(string))("abc")
	if got != "abc" {
		t.Errorf("oninput value = %q", got)
	}
}

func TestComponent(t *testing.T) {
	greet := func(ctx *hooks.Ctx, props Props, children []*VNode) *VNode {
		return P(props["name"])
	}
	n := Component(greet, attr("name", "amy"), Span("child"))
	if n.Kind != vdom.KindComponent {
		t.Fatalf("kind = %v", n.Kind)
	}
	if n.Props["name"] != "amy" {
		t.Errorf("props = %v", n.Props)
	}
	if len(n.Children) != 1 {
		t.Errorf("children = %d, want 1", len(n.Children))
	}
}

func TestConditionalHelpers(t *testing.T) {
	if If(false, Div()) != nil {
		t.Error("If(false) should be nil")
	}
	if IfElse(true, Span("a"), Span("b")).Children[0].Text != "a" {
		t.Error("IfElse picked the wrong branch")
	}
	called := false
	When(false, func() *VNode { called = true; return Div() })
	if called {
		t.Error("When(false) must not invoke the thunk")
	}

	items := Map([]string{"x", "y"}, func(s string) *VNode { return Li(s) })
	if len(items) != 2 || items[1].Children[0].Text != "y" {
		t.Errorf("Map = %+v", items)
	}
}
