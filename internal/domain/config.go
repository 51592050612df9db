package domain

// ConfigKey defines a configuration key with its metadata.
type ConfigKey struct {
	Name        string
	Default     string
	Description string
	Section     string
	HideIfEmpty bool
}

// ConfigKeys lists every setting understood by nlink, in display order.
var ConfigKeys = []ConfigKey{
	{
		Name:        "enable_log",
		Default:     "false",
		Description: "Write a log file (true/false)",
		Section:     "Logging",
	},
	{
		Name:        "log_level",
		Default:     "warn",
		Description: "Minimum log level: debug, info, warn, error",
		Section:     "Logging",
	},
	{
		Name:        "minimal_mode",
		Default:     "false",
		Description: "Start in minimal mode (true/false)",
		Section:     "Commands",
	},
	{
		Name:        "history",
		Default:     "true",
		Description: "Record executed commands (true/false)",
		Section:     "Commands",
	},
	{
		Name:        "history_ignore",
		Default:     "help*,exit,quit",
		Description: "Comma separated globs of commands kept out of history",
		Section:     "Commands",
	},
	{
		Name:        "prompt",
		Default:     "nexus> ",
		Description: "Interactive prompt",
		Section:     "Display",
	},
	{
		Name:        "color_success",
		Description: "Success color (ANSI 0-255)",
		Section:     "Colors",
		HideIfEmpty: true,
	},
	{
		Name:        "color_warning",
		Description: "Warning color (ANSI 0-255)",
		Section:     "Colors",
		HideIfEmpty: true,
	},
	{
		Name:        "color_error",
		Description: "Error color (ANSI 0-255)",
		Section:     "Colors",
		HideIfEmpty: true,
	},
	{
		Name:        "color_info",
		Description: "Info color (ANSI 0-255)",
		Section:     "Colors",
		HideIfEmpty: true,
	},
	{
		Name:        "color_muted",
		Description: "Muted text color (ANSI 0-255)",
		Section:     "Colors",
		HideIfEmpty: true,
	},
	{
		Name:        "color_prompt",
		Description: "Interactive prompt color (ANSI 0-255)",
		Section:     "Colors",
		HideIfEmpty: true,
	},
	{
		Name:        "color_header",
		Description: "Header color (ANSI 0-255 or 'bold')",
		Section:     "Colors",
		HideIfEmpty: true,
	},
}

var configKeyMap map[string]ConfigKey

func init() {
	configKeyMap = make(map[string]ConfigKey, len(ConfigKeys))
	for _, key := range ConfigKeys {
		configKeyMap[key.Name] = key
	}
}

// GetConfigKey returns the ConfigKey for a given name.
func GetConfigKey(name string) (ConfigKey, bool) {
	key, ok := configKeyMap[name]
	return key, ok
}

func IsValidConfigKey(name string) bool {
	_, ok := configKeyMap[name]
	return ok
}

// GetDefaultValue returns the default value for a config key.
func GetDefaultValue(name string) (string, bool) {
	if key, ok := configKeyMap[name]; ok {
		return key.Default, true
	}
	return "", false
}
