// Package term abstracts the terminal event source behind a small Driver
// interface: read one raw event, enable mouse reporting, close.
//
// RawEvent mirrors the terminal's own reporting conventions (key code plus
// modifier mask, button mask with one-based cell coordinates, bracketed
// paste markers as discrete events) so the decoders in internal/input can
// stay pure. The concrete driver is backed by tcell; a scriptable mock
// serves tests.
package term
