package main

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"

	"github.com/emvscope/emvscope/hexmask"
)

type config struct {
	MaskRune     rune
	ShowSeverity bool
}

func defaultConfig() config {
	return config{
		MaskRune:     hexmask.DefaultMaskRune,
		ShowSeverity: true,
	}
}

// config.toml key mapping to runtime settings.
type fileConfig struct {
	MaskCharacter string `toml:"mask_character"`
	ShowSeverity  bool   `toml:"show_severity"`
}

// loadConfig reads a TOML config file and overlays it on the defaults.
// Keys absent from the file keep their default values.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return config{}, fmt.Errorf("load config: %w", err)
	}

	if meta.IsDefined("mask_character") {
		s := strings.TrimSpace(raw.MaskCharacter)
		if utf8.RuneCountInString(s) != 1 {
			return config{}, fmt.Errorf("load config: mask_character must be a single character, got %q", s)
		}
		r, _ := utf8.DecodeRuneInString(s)
		cfg.MaskRune = r
	}
	if meta.IsDefined("show_severity") {
		cfg.ShowSeverity = raw.ShowSeverity
	}
	return cfg, nil
}
