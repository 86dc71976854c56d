package tonecodec

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// EncodeText turns edited text back into file bytes. The parsers are
// probed in order (map, then curves, unless WithProbeOrder says otherwise)
// and the first one that accepts the text decides the format. When none
// does, the error matches ErrNoKnownFormat and wraps each parser's error.
//
// A leading UTF-8 or UTF-16 byte order mark selects the text encoding;
// text without one is taken as UTF-8.
func EncodeText(text string, opts ...TextOption) (Format, []byte, error) {
	o := defaultTextOptions()
	for _, opt := range opts {
		opt(&o)
	}

	text, err := normalizeText(text)
	if err != nil {
		return FormatUnknown, nil, fmt.Errorf("%w: %w", ErrNoKnownFormat, err)
	}

	var errs []error
	for _, f := range o.order {
		var data []byte
		switch f {
		case FormatMap:
			data, err = parseEncode[*MapSet](MapCodec{}, text)
		case FormatCurves:
			data, err = parseEncode[*CurveSet](CurveCodec{}, text)
		default:
			continue
		}
		if err == nil {
			Logger().Debug("tonecodec: encoded text", "format", f, "bytes", len(data))
			return f, data, nil
		}
		Logger().Debug("tonecodec: text rejected", "format", f, "err", err)
		errs = append(errs, err)
	}

	if len(errs) == 0 {
		return FormatUnknown, nil, ErrNoKnownFormat
	}
	return FormatUnknown, nil, fmt.Errorf("%w: %w", ErrNoKnownFormat, errors.Join(errs...))
}

// WriteFile encodes text with EncodeText and writes the result to path.
func WriteFile(path, text string, opts ...TextOption) (Format, error) {
	f, data, err := EncodeText(text, opts...)
	if err != nil {
		return FormatUnknown, err
	}
	if err := os.WriteFile(filepath.Clean(path), data, 0o644); err != nil {
		return FormatUnknown, fmt.Errorf("tonecodec: write file: %w", err)
	}
	return f, nil
}

func parseEncode[T any](c Codec[T], text string) ([]byte, error) {
	v, err := c.Parse(text)
	if err != nil {
		return nil, err
	}
	return c.Encode(v)
}

func normalizeText(text string) (string, error) {
	dec := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	out, _, err := transform.String(dec, text)
	if err != nil {
		return "", fmt.Errorf("tonecodec: decode text: %w", err)
	}
	return out, nil
}
