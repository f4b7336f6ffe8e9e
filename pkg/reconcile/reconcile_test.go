package reconcile

import (
	"fmt"
	"testing"

	"github.com/zserge/o/pkg/dom"
	"github.com/zserge/o/pkg/hooks"
	"github.com/zserge/o/pkg/vdom"
)

func newBody(t *testing.T) (*dom.MemoryDocument, *dom.MemoryNode) {
	t.Helper()
	doc := dom.NewDocument()
	return doc, doc.CreateElement("body").(*dom.MemoryNode)
}

func TestRenderElementTree(t *testing.T) {
	_, body := newBody(t)

	Render(body, vdom.H("div", vdom.Props{"id": "root"},
		vdom.H("span", nil, "hello"),
		"world",
	))

	want := `<div id="root"><span>hello</span>world</div>`
	if got := body.InnerHTML(); got != want {
		t.Errorf("rendered %s, want %s", got, want)
	}
}

func TestRenderIdempotent(t *testing.T) {
	doc, body := newBody(t)
	node := vdom.H("div", vdom.Props{"id": "root", "class": "a"},
		vdom.H("span", nil, "hello"))

	Render(body, node)
	doc.ResetPropWrites()

	Render(body, node)
	if n := doc.PropWrites(); n != 0 {
		t.Errorf("re-render wrote %d properties, want 0", n)
	}
}

func TestRenderUpdatesChangedPropsOnly(t *testing.T) {
	doc, body := newBody(t)

	Render(body, vdom.H("div", vdom.Props{"id": "a", "class": "c"}))
	doc.ResetPropWrites()

	Render(body, vdom.H("div", vdom.Props{"id": "b", "class": "c"}))
	if n := doc.PropWrites(); n != 1 {
		t.Errorf("wrote %d properties, want 1 (only id changed)", n)
	}
	div := body.ChildNodes()[0].(*dom.MemoryNode)
	if got := div.Prop("id"); got != "b" {
		t.Errorf("id = %v, want b", got)
	}
}

func TestRenderReplacesMismatchedTag(t *testing.T) {
	_, body := newBody(t)

	Render(body, vdom.H("div", nil))
	first := body.ChildNodes()[0]

	Render(body, vdom.H("p", nil))
	kids := body.ChildNodes()
	if len(kids) != 1 {
		t.Fatalf("len = %d, want 1", len(kids))
	}
	if kids[0] == first {
		t.Error("mismatched tag must not reuse the host node")
	}
	if kids[0].(*dom.MemoryNode).Tag() != "p" {
		t.Errorf("tag = %q, want p", kids[0].(*dom.MemoryNode).Tag())
	}
}

func TestRenderReusesMatchingTag(t *testing.T) {
	_, body := newBody(t)

	Render(body, vdom.H("div", vdom.Props{"id": "a"}))
	first := body.ChildNodes()[0]

	Render(body, vdom.H("div", vdom.Props{"id": "b"}))
	if body.ChildNodes()[0] != first {
		t.Error("matching tag should reuse the host node")
	}
}

func TestRenderTextUpdate(t *testing.T) {
	_, body := newBody(t)

	Render(body, vdom.Text("a"))
	node := body.ChildNodes()[0]

	Render(body, vdom.Text("b"))
	if body.ChildNodes()[0] != node {
		t.Error("text node should be reused")
	}
	if got := body.InnerHTML(); got != "b" {
		t.Errorf("text = %s, want b", got)
	}
}

func TestRenderRemovesTrailingChildren(t *testing.T) {
	_, body := newBody(t)

	Render(body, vdom.H("i", nil), vdom.H("b", nil), vdom.H("u", nil))
	Render(body, vdom.H("i", nil))

	kids := body.ChildNodes()
	if len(kids) != 1 {
		t.Fatalf("len = %d, want 1", len(kids))
	}
}

func TestRenderEmptyListClears(t *testing.T) {
	_, body := newBody(t)

	Render(body, vdom.H("div", nil, "x"))
	Render(body)

	if len(body.ChildNodes()) != 0 {
		t.Error("container should be empty")
	}
}

func TestComponentResolution(t *testing.T) {
	_, body := newBody(t)

	inner := func(ctx *hooks.Ctx, props vdom.Props, children []*vdom.VNode) *vdom.VNode {
		return vdom.H("span", nil, props["msg"])
	}
	outer := func(ctx *hooks.Ctx, props vdom.Props, children []*vdom.VNode) *vdom.VNode {
		return vdom.H(vdom.ComponentFunc(inner), vdom.Props{"msg": "deep"})
	}

	Render(body, vdom.H(vdom.ComponentFunc(outer), nil))
	if got := body.InnerHTML(); got != "<span>deep</span>" {
		t.Errorf("rendered %s, want <span>deep</span>", got)
	}
}

func TestComponentNilResultHoldsPosition(t *testing.T) {
	_, body := newBody(t)

	empty := func(ctx *hooks.Ctx, props vdom.Props, children []*vdom.VNode) *vdom.VNode {
		return nil
	}
	Render(body, vdom.H(vdom.ComponentFunc(empty), nil), vdom.H("b", nil, "x"))

	kids := body.ChildNodes()
	if len(kids) != 2 {
		t.Fatalf("len = %d, want 2", len(kids))
	}
	if got := body.InnerHTML(); got != "<b>x</b>" {
		t.Errorf("rendered %s, want <b>x</b>", got)
	}
}

func TestStateHookProgression(t *testing.T) {
	_, body := newBody(t)

	var set func(int)
	counter := func(ctx *hooks.Ctx, props vdom.Props, children []*vdom.VNode) *vdom.VNode {
		n, setN := hooks.UseState(ctx, 0)
		set = setN
		return vdom.Textf("%d", n)
	}

	Render(body, vdom.H(vdom.ComponentFunc(counter), nil))
	if got := body.InnerHTML(); got != "0" {
		t.Fatalf("initial = %s, want 0", got)
	}

	set(1)
	if got := body.InnerHTML(); got != "1" {
		t.Errorf("after first set = %s, want 1", got)
	}

	set(2)
	if got := body.InnerHTML(); got != "2" {
		t.Errorf("after second set = %s, want 2", got)
	}
}

func TestHandlerRefreshedOnRerender(t *testing.T) {
	_, body := newBody(t)

	counter := func(ctx *hooks.Ctx, props vdom.Props, children []*vdom.VNode) *vdom.VNode {
		n, set := hooks.UseState(ctx, 0)
		return vdom.H("button", vdom.Props{"onclick": func() { set(n + 1) }},
			vdom.Textf("%d", n))
	}
	Render(body, vdom.H(vdom.ComponentFunc(counter), nil))

	click := func() {
		btn := body.ChildNodes()[0]
		btn.Prop("onclick").(func())()
	}
	click()
	click()

	if got := body.InnerHTML(); got != "<button>2</button>" {
		t.Errorf("rendered %s, want <button>2</button>", got)
	}
}

func TestReducerHook(t *testing.T) {
	_, body := newBody(t)

	var dispatch func(int)
	comp := func(ctx *hooks.Ctx, props vdom.Props, children []*vdom.VNode) *vdom.VNode {
		n, d := hooks.UseReducer(ctx, func(s, a int) int { return s + a }, 0)
		dispatch = d
		return vdom.Textf("%d", n)
	}

	Render(body, vdom.H(vdom.ComponentFunc(comp), nil))
	dispatch(5)
	dispatch(2)

	if got := body.InnerHTML(); got != "7" {
		t.Errorf("rendered %s, want 7", got)
	}
}

func TestEffectHookScenario(t *testing.T) {
	_, body := newBody(t)

	runs, cleanups := 0, 0
	page := func(title string) *vdom.VNode {
		comp := func(ctx *hooks.Ctx, props vdom.Props, children []*vdom.VNode) *vdom.VNode {
			title := props["title"].(string)
			hooks.UseEffect(ctx, func() hooks.Cleanup {
				runs++
				return func() { cleanups++ }
			}, []any{title})
			return vdom.H("h1", nil, title)
		}
		return vdom.H(vdom.ComponentFunc(comp), vdom.Props{"title": title})
	}

	Render(body, page("home"))
	if runs != 1 {
		t.Fatalf("runs = %d after mount, want 1", runs)
	}

	Render(body, page("home"))
	if runs != 1 {
		t.Errorf("runs = %d after unchanged title, want 1", runs)
	}

	Render(body, page("about"))
	if runs != 2 {
		t.Errorf("runs = %d after new title, want 2", runs)
	}
	if cleanups != 0 {
		t.Errorf("cleanups = %d before unmount, want 0", cleanups)
	}

	Render(body)
	if cleanups != 1 {
		t.Errorf("cleanups = %d after unmount, want 1", cleanups)
	}
}

func TestNestedCleanupOnTrailingRemoval(t *testing.T) {
	_, body := newBody(t)

	cleaned := false
	leaf := func(ctx *hooks.Ctx, props vdom.Props, children []*vdom.VNode) *vdom.VNode {
		hooks.UseEffect(ctx, func() hooks.Cleanup {
			return func() { cleaned = true }
		}, []any{})
		return vdom.Text("leaf")
	}

	// The component lives inside the second child's subtree.
	Render(body,
		vdom.H("div", nil, "first"),
		vdom.H("div", nil, vdom.H(vdom.ComponentFunc(leaf), nil)),
	)
	if cleaned {
		t.Fatal("cleanup must not fire while mounted")
	}

	Render(body, vdom.H("div", nil, "first"))
	if !cleaned {
		t.Error("removing the subtree must fire its nested cleanup")
	}
}

func TestKeyedReorderKeepsState(t *testing.T) {
	_, body := newBody(t)

	var sets []func(int)
	comp := func(ctx *hooks.Ctx, props vdom.Props, children []*vdom.VNode) *vdom.VNode {
		n, set := hooks.UseState(ctx, props["initial"].(int))
		sets = append(sets, set)
		return vdom.Textf("%d", n)
	}

	a := func() *vdom.VNode {
		return vdom.H(vdom.ComponentFunc(comp), vdom.Props{"key": "a", "initial": 100})
	}
	b := func() *vdom.VNode {
		return vdom.H(vdom.ComponentFunc(comp), vdom.Props{"key": "b", "initial": 200})
	}

	Render(body, a(), b())
	if got := body.InnerHTML(); got != "100200" {
		t.Fatalf("initial = %s, want 100200", got)
	}

	// Bump instance "a" only.
	sets = nil
	Render(body, a(), b())
	sets[0](101)

	// Swap order: state must follow the key, not the position.
	Render(body, b(), a())
	if got := body.InnerHTML(); got != "200101" {
		t.Errorf("after swap = %s, want 200101", got)
	}
}

func TestUnkeyedReorderScramblesState(t *testing.T) {
	_, body := newBody(t)

	var sets []func(int)
	comp := func(ctx *hooks.Ctx, props vdom.Props, children []*vdom.VNode) *vdom.VNode {
		n, set := hooks.UseState(ctx, props["initial"].(int))
		sets = append(sets, set)
		return vdom.Textf("%d", n)
	}

	mk := func(initial int) *vdom.VNode {
		return vdom.H(vdom.ComponentFunc(comp), vdom.Props{"initial": initial})
	}

	Render(body, mk(100), mk(200))
	sets = nil
	Render(body, mk(100), mk(200))
	sets[0](101) // bump the first instance

	// "Reordering" unkeyed siblings of the same function keeps state
	// associated with position, not with the descriptor: documented
	// behavior of auto-incremented instance keys.
	Render(body, mk(200), mk(100))
	if got := body.InnerHTML(); got != "101200" {
		t.Errorf("after reorder = %s, want 101200 (state stays positional)", got)
	}
}

func TestAutoKeysStableForFactoryBuiltComponents(t *testing.T) {
	_, body := newBody(t)

	runs := 0
	// A fresh closure is constructed for every pass; the instance must
	// still be recognized as the same one, keeping its state and not
	// re-running the effect.
	page := func() *vdom.VNode {
		comp := func(ctx *hooks.Ctx, props vdom.Props, children []*vdom.VNode) *vdom.VNode {
			n, _ := hooks.UseState(ctx, 7)
			hooks.UseEffect(ctx, func() hooks.Cleanup {
				runs++
				return nil
			}, []any{"static"})
			return vdom.Textf("%d", n)
		}
		return vdom.H(vdom.ComponentFunc(comp), nil)
	}

	Render(body, page())
	Render(body, page())
	Render(body, page())

	if runs != 1 {
		t.Errorf("effect ran %d times across identical passes, want 1", runs)
	}
	if got := body.InnerHTML(); got != "7" {
		t.Errorf("rendered %s, want 7", got)
	}
}

func TestNestedComponentChainKeysDistinct(t *testing.T) {
	_, body := newBody(t)

	inner := func(ctx *hooks.Ctx, props vdom.Props, children []*vdom.VNode) *vdom.VNode {
		v, _ := hooks.UseState(ctx, "inner")
		return vdom.Text(v)
	}
	outer := func(ctx *hooks.Ctx, props vdom.Props, children []*vdom.VNode) *vdom.VNode {
		_, _ = hooks.UseState(ctx, "outer")
		return vdom.H(vdom.ComponentFunc(inner), nil)
	}

	Render(body, vdom.H(vdom.ComponentFunc(outer), nil))
	Render(body, vdom.H(vdom.ComponentFunc(outer), nil))

	if got := body.InnerHTML(); got != "inner" {
		t.Errorf("rendered %s, want inner", got)
	}
}

func TestAutoKeysDistinguishSiblingInstances(t *testing.T) {
	_, body := newBody(t)

	mk := func(text string) vdom.ComponentFunc {
		return func(ctx *hooks.Ctx, props vdom.Props, children []*vdom.VNode) *vdom.VNode {
			v, _ := hooks.UseState(ctx, text)
			return vdom.Text(v)
		}
	}
	first, second := mk("one"), mk("two")

	Render(body, vdom.H(first, nil), vdom.H(second, nil))
	if got := body.InnerHTML(); got != "onetwo" {
		t.Errorf("rendered %s, want onetwo", got)
	}
}

func TestSiblingInsertionBeforeExisting(t *testing.T) {
	_, body := newBody(t)

	Render(body, vdom.H("b", nil, "old"))
	old := body.ChildNodes()[0]

	Render(body, vdom.H("i", nil, "new"), vdom.H("b", nil, "old"))
	kids := body.ChildNodes()
	if len(kids) != 2 {
		t.Fatalf("len = %d, want 2", len(kids))
	}
	if kids[1] != old {
		t.Error("existing node should shift right and be reused at position 1")
	}
	if got := body.InnerHTML(); got != "<i>new</i><b>old</b>" {
		t.Errorf("rendered %s", got)
	}
}

func TestPropEqual(t *testing.T) {
	f := func() {}
	cases := []struct {
		a, b any
		want bool
	}{
		{"x", "x", true},
		{"x", "y", false},
		{1, 1, true},
		{1, int64(1), false},
		{1.5, 1.5, true},
		{true, true, true},
		{nil, nil, true},
		{nil, "x", false},
		{f, f, false},
		{[]string{"a"}, []string{"a"}, true},
	}
	for i, c := range cases {
		if got := propEqual(c.a, c.b); got != c.want {
			t.Errorf("case %d: propEqual(%v, %v) = %t, want %t", i, c.a, c.b, got, c.want)
		}
	}
}

func BenchmarkRenderFlatList(b *testing.B) {
	doc := dom.NewDocument()
	body := doc.CreateElement("body")
	nodes := make([]*vdom.VNode, 100)
	for i := range nodes {
		nodes[i] = vdom.H("li", vdom.Props{"id": fmt.Sprintf("item-%d", i)}, "item")
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Render(body, nodes...)
	}
}
