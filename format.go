package tonecodec

import (
	"fmt"
	"path/filepath"
	"strings"
)

// newline separates lines in rendered text. Parsing also accepts CRLF.
const newline = "\n"

// Format identifies one of the tone file formats.
type Format int

const (
	// FormatUnknown is any file type other than the two below.
	FormatUnknown Format = iota

	// FormatCurves is the piecewise curves format (.acv).
	FormatCurves

	// FormatMap is the arbitrary map format (.amp).
	FormatMap
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatCurves:
		return "curves"
	case FormatMap:
		return "map"
	default:
		return "unknown"
	}
}

// Ext returns the canonical file extension, or "" for FormatUnknown.
func (f Format) Ext() string {
	switch f {
	case FormatCurves:
		return ".acv"
	case FormatMap:
		return ".amp"
	default:
		return ""
	}
}

// FormatFromPath selects the format by file extension, ignoring case.
// The file content is never inspected.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".acv":
		return FormatCurves
	case ".amp":
		return FormatMap
	default:
		return FormatUnknown
	}
}

// Render decodes data in the given format and returns its text body.
func Render(format Format, data []byte) (string, error) {
	switch format {
	case FormatCurves:
		var c CurveCodec
		s, err := c.Decode(data)
		if err != nil {
			return "", err
		}
		return c.Render(s), nil
	case FormatMap:
		var c MapCodec
		s, err := c.Decode(data)
		if err != nil {
			return "", err
		}
		return c.Render(s), nil
	default:
		return "", fmt.Errorf("%w: %v", ErrUnrecognizedFormat, format)
	}
}

// Document is a decoded file ready for display.
type Document struct {
	// Name is the display name, the base name of the source file.
	Name string

	Format Format

	// Body is the rendered text without the name line.
	Body string
}

// Text returns the name line followed by the body. Map text in this form
// parses back with MapCodec.Parse.
func (d *Document) Text() string {
	return Titled(d.Name, d.Body)
}

// Titled prefixes body with a display name line.
func Titled(name, body string) string {
	return name + newline + body
}

// ReadFile loads path, choosing the codec by extension, and renders it.
// An unknown extension yields ErrUnrecognizedFormat without touching the file.
func ReadFile(path string) (*Document, error) {
	doc := &Document{Name: filepath.Base(path), Format: FormatFromPath(path)}

	switch doc.Format {
	case FormatCurves:
		s, err := LoadCurves(path)
		if err != nil {
			return nil, err
		}
		doc.Body = CurveCodec{}.Render(s)
	case FormatMap:
		s, err := LoadMap(path)
		if err != nil {
			return nil, err
		}
		doc.Body = MapCodec{}.Render(s)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnrecognizedFormat, filepath.Ext(path))
	}

	Logger().Debug("tonecodec: read file", "path", path, "format", doc.Format)
	return doc, nil
}
