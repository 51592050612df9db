package config

import (
	"bufio"
	"os"
	"strings"

	"github.com/nexuslink/nlink/internal/domain"
	"github.com/nexuslink/nlink/internal/log"
)

// ReadLines returns the raw lines of the settings file at path. A missing or
// empty file is created with the defaults.
func ReadLines(path string) ([]string, error) {
	info, err := os.Stat(path)
	isNew := os.IsNotExist(err) || (err == nil && info.Size() == 0)

	file, err := os.OpenFile(path, os.O_CREATE|os.O_RDONLY, 0600)
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if isNew && len(lines) == 0 {
		lines = initializeDefaults()
		if err := WriteLines(path, lines); err != nil {
			log.Warn("config: could not write default config: %v", err)
		}
	}

	return lines, nil
}

func initializeDefaults() []string {
	lines := []string{
		"# nlink configuration",
		"",
	}

	section := ""
	for _, key := range domain.ConfigKeys {
		if key.Section != section {
			section = key.Section
			lines = append(lines, "# "+section)
		}

		value := key.Default
		if strings.Contains(value, " ") {
			value = `"` + value + `"`
		}

		if key.HideIfEmpty {
			lines = append(lines, "# "+key.Name+"=")
		} else {
			lines = append(lines, key.Name+"="+value)
		}
	}

	return lines
}
