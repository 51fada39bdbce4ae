// Package config reads the optional saveworks.ini file.
//
//	[cloverpit]
//	password = ...
//
//	[megabonk]
//	key_hex = ...
//	iv_hex  = ...
//
//	[output]
//	indent = 2
//
//	[watch]
//	debounce_ms = 300
//
// Every key is optional and falls back to the built-in default.
package config

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/ini.v1"

	"saveworks/save"
	"saveworks/save/cloverpit"
	"saveworks/save/megabonk"
)

const DefaultFileName = "saveworks.ini"

const (
	defaultIndent     = 2
	defaultDebounceMs = 300
)

type (
	Config struct {
		Password string
		AES      megabonk.Config
		// Indent is the number of spaces per level in decoded JSON; 0 means compact.
		Indent   int
		Debounce time.Duration
	}
)

func Default() Config {
	return Config{
		Password: cloverpit.DefaultPassword,
		AES:      megabonk.DefaultConfig,
		Indent:   defaultIndent,
		Debounce: defaultDebounceMs * time.Millisecond,
	}
}

// Load reads path. A missing file gives the defaults; a malformed one is an error.
func Load(path string) (Config, error) {
	file, err := ini.LooseLoad(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "config.Load error: %s", path)
	}
	return fromFile(file)
}

func Parse(bs []byte) (Config, error) {
	file, err := ini.Load(bs)
	if err != nil {
		return Config{}, errors.Wrap(err, "config.Parse error")
	}
	return fromFile(file)
}

func fromFile(file *ini.File) (Config, error) {
	config := Default()

	config.Password = file.Section("cloverpit").Key("password").MustString(config.Password)

	megabonkSection := file.Section("megabonk")
	config.AES.KeyHex = megabonkSection.Key("key_hex").MustString(config.AES.KeyHex)
	config.AES.IVHex = megabonkSection.Key("iv_hex").MustString(config.AES.IVHex)
	if _, _, err := config.AES.Keys(); err != nil {
		return Config{}, errors.Wrap(err, "config error: [megabonk]")
	}

	config.Indent = file.Section("output").Key("indent").MustInt(config.Indent)
	if config.Indent < 0 {
		return Config{}, errors.Errorf("config error: [output] indent must not be negative, got %d", config.Indent)
	}

	debounceMs := file.Section("watch").Key("debounce_ms").MustInt(defaultDebounceMs)
	if debounceMs < 0 {
		return Config{}, errors.Errorf("config error: [watch] debounce_ms must not be negative, got %d", debounceMs)
	}
	config.Debounce = time.Duration(debounceMs) * time.Millisecond

	return config, nil
}

func (r Config) SaveOptions() save.Options {
	return save.Options{
		Password: r.Password,
		AES:      r.AES,
		Indent:   strings.Repeat(" ", r.Indent),
	}
}
