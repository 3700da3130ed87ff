// Package jsoncodec implements the codeblock.Codec capability over the
// standard library's encoding/json. No third-party JSON library appears
// anywhere in this project's dependency graph, so the standard library
// is the only grounded choice for this one concern.
package jsoncodec

import (
	"bytes"
	"encoding/json"
)

// Codec is the default codeblock.Codec: indent width 2, HTML escaping
// left at the encoder's default (matching what a human would get from
// `json.MarshalIndent`).
type Codec struct {
	Indent string
}

// New returns a Codec using a two-space indent.
func New() Codec {
	return Codec{Indent: "  "}
}

// Pretty re-encodes s with indentation, ending with a newline.
func (c Codec) Pretty(s string) (string, error) {
	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return "", err
	}

	indent := c.Indent
	if indent == "" {
		indent = "  "
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", indent)
	if err := enc.Encode(v); err != nil {
		return "", err
	}

	return buf.String(), nil
}

// Minify re-encodes s with no indentation and no trailing newline.
func (c Codec) Minify(s string) (string, error) {
	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return "", err
	}

	out, err := json.Marshal(v)
	if err != nil {
		return "", err
	}

	return string(out), nil
}
