package config

import (
	"strconv"
	"strings"

	"github.com/nexuslink/nlink/internal/domain"
)

// Defaults holds the in-code value of every known key. Values are not
// persisted unless the file is created fresh.
var Defaults = func() map[string]func() string {
	m := make(map[string]func() string, len(domain.ConfigKeys))
	for _, key := range domain.ConfigKeys {
		value := key.Default
		m[key.Name] = func() string { return value }
	}
	return m
}()

// Lookup resolves key from cfg, falling back to its default.
func Lookup(cfg map[string]string, key string) (string, bool) {
	if value, ok := cfg[key]; ok {
		return value, true
	}
	if fn, ok := Defaults[key]; ok {
		return fn(), true
	}
	return "", false
}

// Bool reads key from p as a boolean. Unset or malformed values are false.
func Bool(p domain.ConfigProvider, key string) bool {
	if p == nil {
		return false
	}
	value, ok := p.Get(key)
	if !ok {
		return false
	}
	b, err := strconv.ParseBool(strings.TrimSpace(value))
	return err == nil && b
}

// List reads key from p as a comma separated list, dropping empty items.
func List(p domain.ConfigProvider, key string) []string {
	if p == nil {
		return nil
	}
	value, ok := p.Get(key)
	if !ok {
		return nil
	}
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
