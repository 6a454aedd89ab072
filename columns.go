package pretty

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Field is a named value for Columns.
type Field struct {
	Name  string
	Value any
	Opts  []Option
}

// F returns a Field rendered with opts.
func F(name string, v any, opts ...Option) Field {
	return Field{Name: name, Value: v, Opts: opts}
}

// Columns writes one "name: value" line per field with the values aligned in
// a column. Names are padded by display width, so wide characters line up.
func Columns(w io.Writer, fields ...Field) error {
	width := 0
	for _, f := range fields {
		if n := runewidth.StringWidth(f.Name); n > width {
			width = n
		}
	}
	var sb strings.Builder
	for _, f := range fields {
		sb.WriteString(runewidth.FillRight(f.Name+":", width+1))
		sb.WriteByte(' ')
		sb.WriteString(Render(f.Value, f.Opts...))
		sb.WriteByte('\n')
	}
	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("write columns: %w", err)
	}
	return nil
}
