package tonecodec

// TextOption configures the write path (EncodeText, WriteFile).
//
// Example:
//
//	// Only accept map text.
//	f, data, err := tonecodec.EncodeText(text, tonecodec.WithProbeOrder(tonecodec.FormatMap))
type TextOption func(*textOptions)

// textOptions holds optional configuration for the write path.
type textOptions struct {
	order []Format
}

// defaultTextOptions returns the default write path options. Map text is
// probed before curves text because curves parsing is not implemented.
func defaultTextOptions() textOptions {
	return textOptions{
		order: []Format{FormatMap, FormatCurves},
	}
}

// WithProbeOrder sets which parsers EncodeText tries, and in what order.
// FormatUnknown entries are skipped. An empty list makes every text fail
// with ErrNoKnownFormat.
func WithProbeOrder(formats ...Format) TextOption {
	return func(o *textOptions) {
		o.order = append([]Format(nil), formats...)
	}
}
