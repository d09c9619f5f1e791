// Package config loads the weft client configuration from YAML and
// merges it over the compiled-in defaults.
//
// A config file has two top-level sections. The options section tunes
// client behavior (starting mode, mouse reporting, repeat interval).
// The keybinds section maps mode names to key specs to action lists;
// each binding replaces the default binding for that key in that mode,
// and modes or keys the file does not mention keep their defaults.
//
//	options:
//	  default_mode: locked
//	  mouse: false
//	  repeat_interval: 150ms
//	keybinds:
//	  normal:
//	    Ctrl+b:
//	      - kind: SwitchToMode
//	        mode: tab
//	  scroll:
//	    g:
//	      - kind: ScrollUp
//
// Key specs use the grammar of the key package: a single character, a
// named key such as Enter or F5, or Ctrl+X / Alt+X.
package config
