package config

import "github.com/nexuslink/nlink/internal/domain"

// Provider reads and writes one settings file and implements
// domain.ConfigProvider. Reads fall back to Defaults.
type Provider struct {
	path string
}

// NewProvider returns a provider for the settings file at path.
func NewProvider(path string) *Provider {
	return &Provider{path: path}
}

// Path returns the settings file location.
func (p *Provider) Path() string {
	return p.path
}

func (p *Provider) load() map[string]string {
	lines, err := ReadLines(p.path)
	if err != nil {
		return nil
	}
	cfg, err := Parse(lines)
	if err != nil {
		return nil
	}
	return cfg
}

// Get returns the value for key from the file, then from the defaults.
func (p *Provider) Get(key string) (string, bool) {
	return Lookup(p.load(), key)
}

// GetAll returns all values, user settings merged over the defaults.
func (p *Provider) GetAll() (map[string]string, error) {
	result := make(map[string]string, len(Defaults))
	for key, fn := range Defaults {
		result[key] = fn()
	}
	for key, value := range p.load() {
		result[key] = value
	}
	return result, nil
}

// Set writes key=value to the settings file.
func (p *Provider) Set(key, value string) error {
	return WithLock(p.path, func() error {
		lines, err := ReadLines(p.path)
		if err != nil {
			return err
		}
		lines, _ = Set(lines, key, value)
		return WriteLines(p.path, lines)
	})
}

// Unset removes key from the settings file.
func (p *Provider) Unset(key string) error {
	return WithLock(p.path, func() error {
		lines, err := ReadLines(p.path)
		if err != nil {
			return err
		}
		lines, _ = Unset(lines, key)
		return WriteLines(p.path, lines)
	})
}

// Static is an in-memory domain.ConfigProvider, used when no settings file
// should be touched.
type Static map[string]string

func (s Static) Get(key string) (string, bool) {
	return Lookup(s, key)
}

func (s Static) GetAll() (map[string]string, error) {
	result := make(map[string]string, len(Defaults))
	for key, fn := range Defaults {
		result[key] = fn()
	}
	for key, value := range s {
		result[key] = value
	}
	return result, nil
}

func (s Static) Set(key, value string) error {
	s[key] = value
	return nil
}

func (s Static) Unset(key string) error {
	delete(s, key)
	return nil
}

var (
	_ domain.ConfigProvider = (*Provider)(nil)
	_ domain.ConfigProvider = Static(nil)
)
