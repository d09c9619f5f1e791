// Package key defines the normalized keyboard input model and the decoder
// from raw terminal key events.
//
// Modifiers are fused into the key variant rather than carried as a
// separate flag: Ctrl+x decodes to Ctrl('x') and Alt+x to Alt('x'). Only
// character keys compose with Ctrl or Alt; a modifier applied to any
// other key is reported as unsupported and produces no key.
package key
