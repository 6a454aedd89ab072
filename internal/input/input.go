// Package input decodes JSON, YAML and TOML documents into plain Go values
// for rendering.
package input

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrDecode            = errors.New("decode failed")
)

// Format is an input document format.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
	TOML Format = "toml"
)

var formats = []Format{JSON, YAML, TOML}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported format names.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ParseFormat parses a format name. "yml" is accepted as YAML.
func ParseFormat(s string) (Format, error) {
	s = strings.ToLower(s)
	if s == "yml" {
		return YAML, nil
	}
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// FormatFor picks the format from a file extension.
func FormatFor(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("%w: %q has no extension", ErrUnsupportedFormat, path)
	}
	return ParseFormat(ext)
}

// Decode reads one document from r. Objects decode to map[string]any and
// arrays to []any.
func Decode(r io.Reader, f Format) (any, error) {
	var v any
	var err error
	switch f {
	case JSON:
		dec := json.NewDecoder(r)
		dec.UseNumber()
		err = dec.Decode(&v)
	case YAML:
		err = yaml.NewDecoder(r).Decode(&v)
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
	case TOML:
		var doc map[string]any
		err = toml.NewDecoder(r).Decode(&doc)
		v = doc
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDecode, f, err)
	}
	return v, nil
}
