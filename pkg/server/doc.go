// Package server hosts components over WebSocket sessions. Each connection
// gets its own in-memory document; the reconciler renders into it on the
// server, and the thin browser client only displays snapshots and reports
// events back.
package server
