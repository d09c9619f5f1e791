package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dshills/weft/internal/input"
	"github.com/dshills/weft/internal/input/key"
	"github.com/dshills/weft/internal/input/keymap"
	"github.com/dshills/weft/internal/protocol"
)

// Duration unmarshals from YAML strings in time.ParseDuration syntax.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return fmt.Errorf("%w: %v", ErrBadDuration, err)
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrBadDuration, s)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// Options tunes client behavior. Zero values mean "use the default".
type Options struct {
	// DefaultMode is the mode the client starts in.
	DefaultMode protocol.InputMode `yaml:"default_mode"`

	// Mouse enables terminal mouse reporting. Defaults to on.
	Mouse *bool `yaml:"mouse"`

	// RepeatInterval is the mouse-hold re-dispatch period.
	RepeatInterval Duration `yaml:"repeat_interval"`

	// AckTimeout bounds waits for structural acknowledgments. Zero
	// waits forever.
	AckTimeout Duration `yaml:"ack_timeout"`
}

// file is the on-disk YAML shape. Keybinds stay string-keyed until
// validation resolves them against the mode and key grammars.
type file struct {
	Options  Options                                 `yaml:"options"`
	Keybinds map[string]map[string][]protocol.Action `yaml:"keybinds"`
}

// Config is a fully resolved client configuration.
type Config struct {
	Options  Options
	Keybinds keymap.Keybinds
}

// Default returns the compiled-in configuration.
func Default() Config {
	return Config{
		Options:  Options{DefaultMode: protocol.ModeNormal},
		Keybinds: keymap.Default(),
	}
}

// Load reads path and merges it over the defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML config data and merges it over the defaults.
// Bindings replace the default actions for their key; everything the
// data does not mention keeps its default.
func Parse(data []byte) (Config, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg := Default()
	mergeOptions(&cfg.Options, f.Options)

	for modeName, binds := range f.Keybinds {
		mode, err := protocol.ParseInputMode(modeName)
		if err != nil {
			return Config{}, fmt.Errorf("keybinds.%s: %w", modeName, ErrUnknownMode)
		}
		for spec, actions := range binds {
			k, err := key.Parse(spec)
			if err != nil {
				return Config{}, fmt.Errorf("keybinds.%s.%q: %w: %v", modeName, spec, ErrBadKeySpec, err)
			}
			for _, a := range actions {
				if a.Kind == protocol.ActionNone {
					return Config{}, fmt.Errorf("keybinds.%s.%q: %w: missing kind", modeName, spec, ErrBadAction)
				}
			}
			cfg.Keybinds.Bind(mode, k, actions...)
		}
	}

	return cfg, nil
}

func mergeOptions(dst *Options, src Options) {
	if src.DefaultMode != protocol.ModeNormal {
		dst.DefaultMode = src.DefaultMode
	}
	if src.Mouse != nil {
		dst.Mouse = src.Mouse
	}
	if src.RepeatInterval != 0 {
		dst.RepeatInterval = src.RepeatInterval
	}
	if src.AckTimeout != 0 {
		dst.AckTimeout = src.AckTimeout
	}
}

// InputConfig converts the resolved options into the input handler's
// configuration.
func (c Config) InputConfig() input.Config {
	ic := input.DefaultConfig()
	ic.DefaultMode = c.Options.DefaultMode
	if c.Options.Mouse != nil && !*c.Options.Mouse {
		ic.DisableMouse = true
	}
	if c.Options.RepeatInterval != 0 {
		ic.RepeatInterval = time.Duration(c.Options.RepeatInterval)
	}
	if c.Options.AckTimeout != 0 {
		ic.AckTimeout = time.Duration(c.Options.AckTimeout)
	}
	return ic
}
