package server

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/zserge/o/pkg/dom"
	"github.com/zserge/o/pkg/reconcile"
)

// clientEvent is what the thin client reports back.
type clientEvent struct {
	Node  string `json:"node"`  // child-index path from the container, "0.2.1"
	Event string `json:"event"` // "click", "input", ...
	Value string `json:"value"` // payload for value-carrying events
}

// snapshot is what the server pushes after every render pass.
type snapshot struct {
	Type string `json:"type"` // "snapshot"
	HTML string `json:"html"`
}

// session is one connected client: its own document, its own hook state,
// one event at a time. All rendering happens on the session's read loop,
// which keeps render passes for the container from ever overlapping.
type session struct {
	id   string
	srv  *Server
	conn *websocket.Conn
	log  *slog.Logger
	doc  *dom.MemoryDocument
	body *dom.MemoryNode
}

func newSession(srv *Server, conn *websocket.Conn) *session {
	id := newSessionID()
	return &session{
		id:   id,
		srv:  srv,
		conn: conn,
		log:  srv.log.With("session", id),
		doc:  dom.NewDocument(),
	}
}

func newSessionID() string {
	var b [8]byte
	rand.Read(b[:])
	return hex.EncodeToString(b[:])
}

// run renders the initial tree, pushes it, then serves events until the
// connection drops or ctx is canceled.
func (s *session) run(ctx context.Context) {
	defer s.conn.Close()

	s.body = s.doc.CreateElement("body").(*dom.MemoryNode)
	s.render()
	if err := s.push(); err != nil {
		s.log.Warn("initial snapshot failed", "err", err)
		return
	}
	s.log.Info("session started")

	stop := context.AfterFunc(ctx, func() {
		s.conn.SetReadDeadline(time.Now())
	})
	defer stop()

	for {
		var ev clientEvent
		if err := s.conn.ReadJSON(&ev); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.log.Warn("session read failed", "err", err)
			} else {
				s.log.Info("session closed")
			}
			return
		}
		s.dispatch(ctx, ev)
		if err := s.push(); err != nil {
			s.log.Warn("snapshot push failed", "err", err)
			return
		}
	}
}

// render runs a full pass for the session container.
func (s *session) render() {
	reconcile.Render(s.body, s.srv.cfg.Root())
	s.srv.metrics.rendersTotal.Inc()
}

// dispatch routes a client event to the handler prop of the addressed
// node. Handlers trigger re-renders synchronously through the hook update
// trigger; dispatch only has to run them.
func (s *session) dispatch(ctx context.Context, ev clientEvent) {
	start := time.Now()
	_, span := s.srv.tracer.Start(ctx, "o.event",
		trace.WithAttributes(
			attribute.String("event.name", ev.Event),
			attribute.String("event.node", ev.Node),
		))
	defer span.End()

	s.srv.metrics.eventsTotal.WithLabelValues(ev.Event).Inc()
	defer func() {
		s.srv.metrics.eventDuration.Observe(time.Since(start).Seconds())
	}()

	node := s.lookup(ev.Node)
	if node == nil {
		span.SetStatus(codes.Error, "node not found")
		s.srv.metrics.eventErrors.Inc()
		s.log.Warn("event for unknown node", "node", ev.Node, "event", ev.Event)
		return
	}
	switch fn := node.Prop("on" + ev.Event).(type) {
	case func():
		fn()
	case func(string):
		fn(ev.Value)
	default:
		span.SetStatus(codes.Error, "no handler")
		s.srv.metrics.eventErrors.Inc()
		s.log.Warn("event without handler", "node", ev.Node, "event", ev.Event)
	}
}

// lookup resolves a child-index path from the container.
func (s *session) lookup(path string) dom.Node {
	var node dom.Node = s.body
	if path == "" {
		return node
	}
	for _, part := range strings.Split(path, ".") {
		i, err := strconv.Atoi(part)
		if err != nil {
			return nil
		}
		kids := node.ChildNodes()
		if i < 0 || i >= len(kids) {
			return nil
		}
		node = kids[i]
	}
	return node
}

// push sends the current document state to the client.
func (s *session) push() error {
	s.srv.metrics.snapshotsTotal.Inc()
	return s.conn.WriteJSON(snapshot{Type: "snapshot", HTML: liveHTML(s.body)})
}
