package launcher

import (
	"fmt"

	"github.com/lvim-tech/lv2launch/pkg/config"
	"github.com/lvim-tech/lv2launch/pkg/utils"
)

type constructor func(Options) Launcher

var registry = map[string]constructor{
	"rofi":   NewRofi,
	"dmenu":  NewDmenu,
	"fzf":    NewFzf,
	"bemenu": NewBemenu,
	"fuzzel": NewFuzzel,
}

// priority is the auto-detection order.
var priority = []string{"rofi", "dmenu", "fzf", "bemenu", "fuzzel"}

// Names returns the supported picker names in detection order.
func Names() []string {
	return append([]string(nil), priority...)
}

// New builds the named picker from its [pickers.<name>] table.
func New(name string, cfg *config.Config) (Launcher, error) {
	ctor, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown launcher %q (supported: %v)", name, priority)
	}
	var raw map[string]any
	if cfg != nil {
		raw = cfg.GetPickerConfig(name)
	}
	opts, err := DecodeOptions(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return ctor(opts), nil
}

// Detect returns the preferred picker if it is installed, otherwise the
// first installed one in priority order.
func Detect(preferred string, cfg *config.Config) (Launcher, error) {
	order := priority
	if preferred != "" {
		order = append([]string{preferred}, priority...)
	}
	for _, name := range order {
		if _, ok := registry[name]; !ok {
			continue
		}
		l, err := New(name, cfg)
		if err != nil {
			return nil, err
		}
		if m, ok := l.(*menu); ok && !utils.CommandExists(m.command) {
			continue
		}
		return l, nil
	}
	return nil, ErrNoLauncher
}
