// Package jsonpretty indents and colorizes JSON for the terminal.
package jsonpretty

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mgutz/ansi"
)

var (
	colorDelim  = ansi.ColorCode("white+b")
	colorKey    = ansi.ColorCode("blue+b")
	colorNull   = ansi.ColorCode("cyan")
	colorString = ansi.ColorCode("green")
	colorBool   = ansi.ColorCode("yellow")
)

// Format reads a JSON document from r and writes it to w with one value per
// line, nested values indented by indent. Object keys and scalar values are
// colored when colorize is set. Numbers are written as they were read.
func Format(w io.Writer, r io.Reader, indent string, colorize bool) error {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	p := &prettyWriter{w: w, colorize: colorize}

	var idx int
	var stack []json.Delim

	for {
		t, err := dec.Token()
		if errors.Is(err, io.EOF) {
			if len(stack) > 0 {
				return fmt.Errorf("failed to read token: %w", io.ErrUnexpectedEOF)
			}
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read token: %w", err)
		}

		switch tt := t.(type) {
		case json.Delim:
			switch tt {
			case '{', '[':
				stack = append(stack, tt)
				idx = 0
				p.colored(colorDelim, tt.String())
				if dec.More() {
					p.plain("\n", strings.Repeat(indent, len(stack)))
				}
				continue
			case '}', ']':
				stack = stack[:len(stack)-1]
				idx = 0
				p.colored(colorDelim, tt.String())
			}
		default:
			b, err := marshalJSON(tt)
			if err != nil {
				return fmt.Errorf("failed to marshal JSON: %w", err)
			}

			isKey := len(stack) > 0 && stack[len(stack)-1] == '{' && idx%2 == 0
			idx++

			p.colored(valueColor(tt, isKey), string(b))
			if isKey {
				p.colored(colorDelim, ":")
				p.plain(" ")
				continue
			}
		}

		switch {
		case dec.More():
			p.colored(colorDelim, ",")
			p.plain("\n", strings.Repeat(indent, len(stack)))
		case len(stack) > 0:
			p.plain("\n", strings.Repeat(indent, len(stack)-1))
		default:
			p.plain("\n")
		}
		if p.err != nil {
			return p.err
		}
	}

	return p.err
}

func valueColor(v any, isKey bool) string {
	if isKey {
		return colorKey
	}
	switch v.(type) {
	case nil:
		return colorNull
	case string:
		return colorString
	case bool:
		return colorBool
	}
	return ""
}

// prettyWriter remembers the first write error so the token loop stays flat.
type prettyWriter struct {
	w        io.Writer
	colorize bool
	err      error
}

func (p *prettyWriter) plain(s ...string) {
	for _, v := range s {
		if p.err != nil {
			return
		}
		_, p.err = io.WriteString(p.w, v)
	}
}

func (p *prettyWriter) colored(color, s string) {
	if !p.colorize || color == "" {
		p.plain(s)
		return
	}
	p.plain(color, s, ansi.Reset)
}

// marshalJSON works like json.Marshal, but with HTML-escaping disabled.
func marshalJSON(v any) ([]byte, error) {
	buf := bytes.Buffer{}
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
