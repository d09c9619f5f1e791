// Package mouse defines the normalized mouse event model and the decoder
// from raw terminal mouse reports.
//
// The terminal reports button state as a mask with one-based cell
// coordinates; the decoder tracks the previously held mask to classify
// each report as a press, hold, or release, and normalizes coordinates to
// zero-based positions. Button identity is discarded on release because
// the underlying protocol does not report it reliably.
package mouse
