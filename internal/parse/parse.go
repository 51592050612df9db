// Package parse turns command input into argument vectors and parameter maps.
package parse

import (
	"os"
	"strings"

	"github.com/nexuslink/nlink/internal/params"
	"github.com/nexuslink/nlink/internal/status"
)

const (
	// MaxLength is the longest command line accepted, in bytes.
	MaxLength = 4096
	// MaxArgs is the largest number of tokens in one command line.
	MaxArgs = 256
)

// Options control tokenization and pattern extraction.
type Options struct {
	Quotes        bool
	Escapes       bool
	ExpandEnv     bool
	CaseSensitive bool

	// LookupEnv resolves $NAME tokens. Nil means os.LookupEnv.
	LookupEnv func(string) (string, bool)
}

func DefaultOptions() Options {
	return Options{
		Quotes:    true,
		Escapes:   true,
		ExpandEnv: true,
		LookupEnv: os.LookupEnv,
	}
}

func (o Options) lookup(name string) (string, bool) {
	if o.LookupEnv != nil {
		return o.LookupEnv(name)
	}
	return os.LookupEnv(name)
}

// Result is a parsed command line. Args includes the command itself.
type Result struct {
	Command string
	Args    []string
	Params  *params.Params
}

// Join rejoins the arguments with single spaces, quoting any that Parse would
// otherwise split or expand.
func (r *Result) Join() string {
	if r == nil {
		return ""
	}
	return QuoteArgs(r.Args)
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// Parse splits input into whitespace separated tokens.
//
// A token that opens with a double quote runs to the next unescaped quote and
// may contain whitespace. Backslash escapes \n, \r and \t produce control
// characters; any other escaped byte stands for itself. A token of the form
// $NAME is replaced by the value of NAME when it is set.
func Parse(input string, opts Options) (*Result, error) {
	if len(input) > MaxLength {
		return nil, status.InvalidParameter("command exceeds %d bytes", MaxLength)
	}

	res := &Result{}
	i := 0
	for {
		for i < len(input) && isSpace(input[i]) {
			i++
		}
		if i >= len(input) {
			break
		}
		if len(res.Args) == MaxArgs {
			return nil, status.InvalidParameter("too many arguments (max %d)", MaxArgs)
		}

		var (
			tok string
			err error
		)
		if opts.Quotes && input[i] == '"' {
			tok, i, err = quoted(input, i+1, len(res.Args), opts)
			if err != nil {
				return nil, err
			}
		} else {
			tok, i = unquoted(input, i, opts)
		}

		if opts.ExpandEnv && len(tok) > 1 && tok[0] == '$' {
			if v, ok := opts.lookup(tok[1:]); ok {
				tok = v
			}
		}

		res.Args = append(res.Args, tok)
	}

	if len(res.Args) > 0 {
		res.Command = res.Args[0]
	}
	return res, nil
}

func quoted(input string, start, index int, opts Options) (string, int, error) {
	var sb strings.Builder
	i := start
	for i < len(input) && input[i] != '"' {
		if opts.Escapes && input[i] == '\\' && i+1 < len(input) {
			sb.WriteByte(unescape(input[i+1]))
			i += 2
			continue
		}
		sb.WriteByte(input[i])
		i++
	}
	if i >= len(input) {
		return "", i, status.InvalidParameter("missing closing quote for argument %d", index)
	}
	return sb.String(), i + 1, nil
}

func unquoted(input string, start int, opts Options) (string, int) {
	var sb strings.Builder
	i := start
	for i < len(input) && !isSpace(input[i]) {
		if opts.Escapes && input[i] == '\\' && i+1 < len(input) {
			sb.WriteByte(unescape(input[i+1]))
			i += 2
			continue
		}
		sb.WriteByte(input[i])
		i++
	}
	return sb.String(), i
}

func unescape(c byte) byte {
	switch c {
	case 'n':
		return '\n'
	case 'r':
		return '\r'
	case 't':
		return '\t'
	default:
		return c
	}
}
