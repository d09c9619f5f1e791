// Package client holds the client-process primitives shared by the input
// pipeline and the IPC layer: the blocking gate that serializes structural
// actions against server-side application, and the instruction channel
// that tells the owning client process to shut down.
package client
