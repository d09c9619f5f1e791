// Package app wires the weft client together: configuration, the
// server connection, the terminal driver, and the input loop. The
// entry point builds an App from command-line options and blocks in
// Run until the session ends.
package app
