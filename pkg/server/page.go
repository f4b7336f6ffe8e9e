package server

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/zserge/o/pkg/dom"
	"github.com/zserge/o/pkg/vdom"
)

// indexPage is the HTML shell with the embedded thin client. The client
// only swaps snapshots into #app and reports delegated events; all state
// lives on the server.
const indexPage = `<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
</head>
<body>
<div id="app"></div>
<script>
(function () {
  var proto = location.protocol === "https:" ? "wss://" : "ws://";
  var ws = new WebSocket(proto + location.host + "/live");
  var app = document.getElementById("app");
  ws.onmessage = function (msg) {
    var data = JSON.parse(msg.data);
    if (data.type === "snapshot") app.innerHTML = data.html;
  };
  function report(e, value) {
    var el = e.target.closest("[data-o-node]");
    if (!el) return;
    var events = (el.getAttribute("data-o-on") || "").split(",");
    if (events.indexOf(e.type) < 0) return;
    ws.send(JSON.stringify({node: el.getAttribute("data-o-node"), event: e.type, value: value || ""}));
  }
  app.addEventListener("click", function (e) { report(e, ""); });
  app.addEventListener("input", function (e) { report(e, e.target.value); });
  app.addEventListener("change", function (e) { report(e, e.target.value); });
  app.addEventListener("submit", function (e) { e.preventDefault(); report(e, ""); });
})();
</script>
</body>
</html>
`

// liveHTML serializes the container's children for the thin client.
// Elements carrying handler props get data-o-node (their child-index path)
// and data-o-on (their handled events) so the client can address them.
func liveHTML(container *dom.MemoryNode) string {
	var b strings.Builder
	for i, c := range container.ChildNodes() {
		writeLive(&b, c.(*dom.MemoryNode), fmt.Sprint(i))
	}
	return b.String()
}

func writeLive(b *strings.Builder, n *dom.MemoryNode, path string) {
	if n.IsText() {
		b.WriteString(dom.EscapeText(n.Text()))
		return
	}

	b.WriteByte('<')
	b.WriteString(n.Tag())

	var events []string
	props := n.Props()
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if dom.IsInternalProp(k) {
			continue
		}
		v := props[k]
		if strings.HasPrefix(k, "on") && reflect.ValueOf(v).Kind() == reflect.Func {
			events = append(events, strings.TrimPrefix(k, "on"))
			continue
		}
		switch val := v.(type) {
		case nil:
		case bool:
			if val {
				b.WriteByte(' ')
				b.WriteString(k)
			}
		case string:
			fmt.Fprintf(b, ` %s="%s"`, k, dom.EscapeAttr(val))
		case int, int64, float64:
			fmt.Fprintf(b, ` %s="%s"`, k, dom.EscapeAttr(fmt.Sprint(val)))
		}
	}
	if len(events) > 0 {
		fmt.Fprintf(b, ` data-o-node="%s" data-o-on="%s"`, path, strings.Join(events, ","))
	}

	kids := n.ChildNodes()
	if vdom.IsVoidElement(n.Tag()) && len(kids) == 0 {
		b.WriteString("/>")
		return
	}
	b.WriteByte('>')
	for i, c := range kids {
		writeLive(b, c.(*dom.MemoryNode), path+"."+fmt.Sprint(i))
	}
	b.WriteString("</")
	b.WriteString(n.Tag())
	b.WriteByte('>')
}
