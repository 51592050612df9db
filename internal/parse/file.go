package parse

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/nexuslink/nlink/internal/status"
)

// Line is one command of a script together with its 1-based line number.
type Line struct {
	Number int
	Text   string
}

// EachLine streams the commands of a script file to fn, one line at a time,
// so fn has run for every earlier line before a bad one is read. Blank lines
// and lines starting with # are skipped, leading whitespace is trimmed. A line
// longer than MaxLength is an error naming its line number. An error from fn
// stops the scan and is returned unchanged.
func EachLine(path string, fn func(Line) error) error {
	f, err := os.Open(path)
	if err != nil {
		return status.NotFound("failed to open script file: %s", path)
	}
	defer func() { _ = f.Close() }()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 1024), MaxLength+1)

	n := 0
	for scanner.Scan() {
		n++
		text := strings.TrimRight(scanner.Text(), "\r")
		if len(text) > MaxLength {
			return status.InvalidParameter("line %d exceeds %d bytes", n, MaxLength)
		}
		text = strings.TrimLeft(text, " \t")
		if text == "" || text[0] == '#' {
			continue
		}
		if err := fn(Line{Number: n, Text: text}); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return status.InvalidParameter("line %d exceeds %d bytes", n+1, MaxLength)
		}
		return status.IOError(err, "reading %s", path)
	}
	return nil
}

// ReadLines collects the commands of a script file. On error the lines read
// before the failure are still returned.
func ReadLines(path string) ([]Line, error) {
	var lines []Line
	err := EachLine(path, func(l Line) error {
		lines = append(lines, l)
		return nil
	})
	return lines, err
}

// ParseFile parses every command line of a script file.
func ParseFile(path string, opts Options) ([]*Result, error) {
	lines, err := ReadLines(path)
	if err != nil {
		return nil, err
	}

	results := make([]*Result, 0, len(lines))
	for _, l := range lines {
		res, err := Parse(l.Text, opts)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", l.Number, err)
		}
		results = append(results, res)
	}
	return results, nil
}
