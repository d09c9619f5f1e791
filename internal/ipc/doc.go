// Package ipc implements the client side of the weft client/server
// channel: a unix-domain socket carrying newline-delimited JSON envelopes.
//
// Sends are one-way posts. The receive loop runs on its own goroutine and
// routes unblock acknowledgments to the blocking gate and exit notices to
// the client instruction channel.
package ipc
