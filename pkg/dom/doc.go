// Package dom declares the host document surface the reconciler drives,
// and provides an in-memory implementation of it.
//
// The reconciler owns no document of its own: it creates, moves and removes
// nodes through the Document and Node interfaces, and writes state through
// node properties. A browser-backed implementation can satisfy the same
// interfaces; the in-memory one here backs tests and the live-session
// server.
package dom
