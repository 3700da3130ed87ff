// Package codeblock post-processes fenced code block bodies at
// serialization time, delegating JSON prettification to an injected
// Codec so the core tree/build logic never depends on a JSON library.
package codeblock

import "strings"

// Codec is the JSON codec capability a host environment supplies.
// Implementations must be safe for concurrent use if shared across
// threads — this package imposes no locking of its own.
type Codec interface {
	// Pretty returns an indented rendering of s ending with a newline,
	// or an error if s is not valid JSON.
	Pretty(s string) (string, error)
	// Minify returns a single-line rendering of s with no trailing
	// newline, or an error if s is not valid JSON.
	Minify(s string) (string, error)
}

const (
	langJSON        = "json"
	langJSONLine    = "jsonline"
	langJSONLines   = "jsonlines"
	langJSONLineSp  = "json line"
	langJSONLinesSp = "json lines"
)

// Process post-processes body according to language. A "json" body is
// pretty-printed (or minified, if minify is set); one of the four
// jsonlines spellings always triggers per-line minification; anything
// else passes through verbatim. Codec failures are swallowed — the
// original body (or, for jsonlines, the original line) is emitted.
func Process(language, body string, codec Codec, minify bool) string {
	if codec == nil {
		return body
	}

	switch language {
	case langJSON:
		if minify {
			out, err := codec.Minify(body)
			if err != nil {
				return body
			}
			return out + "\n"
		}
		pretty, err := codec.Pretty(body)
		if err != nil {
			return body
		}
		return pretty
	case langJSONLine, langJSONLines, langJSONLineSp, langJSONLinesSp:
		return processLines(body, codec)
	default:
		return body
	}
}

// Processor adapts a Codec to mdnode.CodeProcessor's (language, body)
// string signature, so callers can pass Processor{Codec: codec} directly
// to mdnode.WithCodeProcessor without this package importing mdnode.
type Processor struct {
	Codec  Codec
	Minify bool
}

// Process implements mdnode.CodeProcessor.
func (p Processor) Process(language, body string) string {
	return Process(language, body, p.Codec, p.Minify)
}

func processLines(body string, codec Codec) string {
	trimmed := strings.TrimSuffix(body, "\n")
	if trimmed == "" {
		return body
	}

	lines := strings.Split(trimmed, "\n")
	for i, line := range lines {
		if minified, err := codec.Minify(line); err == nil {
			lines[i] = minified
		}
	}

	return strings.Join(lines, "\n") + "\n"
}
