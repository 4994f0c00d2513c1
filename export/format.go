package export

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/poiesic/termfinder/core"
)

// Format selects an output rendering.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatFHIR Format = "fhir"
)

// ErrUnknownFormat is returned by ParseFormat for unsupported names.
var ErrUnknownFormat = errors.New("unknown output format")

// ParseFormat maps a case-insensitive name onto a Format.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case FormatText, FormatJSON, FormatFHIR:
		return f, nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("%w %q: must be one of text, json, fhir", ErrUnknownFormat, name)
	}
}

// Write renders res to w in the given format.
func Write(w io.Writer, format Format, res *core.Resolution) error {
	switch format {
	case FormatText:
		return WriteText(w, res)
	case FormatJSON:
		return WriteJSON(w, res)
	case FormatFHIR:
		return WriteFHIR(w, res)
	default:
		return fmt.Errorf("%w %q", ErrUnknownFormat, format)
	}
}
