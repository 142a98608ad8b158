package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"eshop-fixtures/internal/fixture"
	"github.com/davecgh/go-spew/spew"
)

// Format selects how a bundle is written.
type Format string

const (
	// FormatJSON writes the bundle as an indented JSON document.
	FormatJSON Format = "json"
	// FormatDump writes the raw object graph, unexported fields included.
	FormatDump Format = "dump"
)

var ErrUnknownFormat = errors.New("unknown output format")

var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// ParseFormat accepts a format name case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatJSON, FormatDump:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Write renders b to w in the given format.
func Write(w io.Writer, b fixture.Bundle, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(b); err != nil {
			return fmt.Errorf("encode bundle: %w", err)
		}
		return nil
	case FormatDump:
		dumper.Fdump(w, b)
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
