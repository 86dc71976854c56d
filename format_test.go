package tonecodec

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"tone.acv", FormatCurves},
		{"TONE.ACV", FormatCurves},
		{`C:\presets\Tone.Acv`, FormatCurves},
		{"levels.amp", FormatMap},
		{"/tmp/levels.AMP", FormatMap},
		{"levels.amp.bak", FormatUnknown},
		{"photo.png", FormatUnknown},
		{"acv", FormatUnknown},
		{"", FormatUnknown},
	}

	for _, tt := range tests {
		if got := FormatFromPath(tt.path); got != tt.want {
			t.Errorf("FormatFromPath(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestFormatString(t *testing.T) {
	tests := []struct {
		f    Format
		name string
		ext  string
	}{
		{FormatUnknown, "unknown", ""},
		{FormatCurves, "curves", ".acv"},
		{FormatMap, "map", ".amp"},
		{Format(42), "unknown", ""},
	}
	for _, tt := range tests {
		if got := tt.f.String(); got != tt.name {
			t.Errorf("Format(%d).String() = %q, want %q", int(tt.f), got, tt.name)
		}
		if got := tt.f.Ext(); got != tt.ext {
			t.Errorf("Format(%d).Ext() = %q, want %q", int(tt.f), got, tt.ext)
		}
	}
}

func TestRender(t *testing.T) {
	got, err := Render(FormatCurves, curveFile(1, []Point{{X: 20, Y: 10}}))
	if err != nil {
		t.Fatalf("Render(curves) error = %v", err)
	}
	if !strings.HasSuffix(got, "Curve 0: (020,010) ") {
		t.Errorf("Render(curves) = %q", got)
	}

	got, err = Render(FormatMap, make([]byte, 300))
	if err != nil {
		t.Fatalf("Render(map) error = %v", err)
	}
	if !strings.HasPrefix(got, "Curves Count:1\n") {
		t.Errorf("Render(map) = %q", got[:20])
	}

	if _, err := Render(FormatCurves, []byte{0x00}); !errors.Is(err, ErrTruncated) {
		t.Errorf("Render(short curves) error = %v, want ErrTruncated", err)
	}
	if _, err := Render(FormatUnknown, nil); !errors.Is(err, ErrUnrecognizedFormat) {
		t.Errorf("Render(unknown) error = %v, want ErrUnrecognizedFormat", err)
	}
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	write := func(name string, data []byte) string {
		t.Helper()
		p := filepath.Join(dir, name)
		if err := os.WriteFile(p, data, 0o600); err != nil {
			t.Fatal(err)
		}
		return p
	}

	acv := write("Tone.ACV", curveFile(4, []Point{{X: 0, Y: 0}, {X: 255, Y: 255}}))
	doc, err := ReadFile(acv)
	if err != nil {
		t.Fatalf("ReadFile(acv) error = %v", err)
	}
	if doc.Format != FormatCurves || doc.Name != "Tone.ACV" {
		t.Errorf("ReadFile(acv) = {%q, %v}", doc.Name, doc.Format)
	}
	want := "Tone.ACV\nCurves Count:1\nControl Points coordinates (X,Y):\nCurve 0: (000,000) (255,255) "
	if doc.Text() != want {
		t.Errorf("Text() = %q, want %q", doc.Text(), want)
	}

	amp := write("levels.amp", make([]byte, 512))
	doc, err = ReadFile(amp)
	if err != nil {
		t.Fatalf("ReadFile(amp) error = %v", err)
	}
	if doc.Format != FormatMap {
		t.Errorf("ReadFile(amp) format = %v, want map", doc.Format)
	}
	set, err := MapCodec{}.Parse(doc.Text())
	if err != nil {
		t.Fatalf("Parse(Text()) error = %v", err)
	}
	if len(set.Channels) != 2 {
		t.Errorf("Parse(Text()) channels = %d, want 2", len(set.Channels))
	}

	txt := write("notes.txt", []byte("hello"))
	if _, err := ReadFile(txt); !errors.Is(err, ErrUnrecognizedFormat) {
		t.Errorf("ReadFile(txt) error = %v, want ErrUnrecognizedFormat", err)
	}

	short := write("short.acv", []byte{0x00, 0x01, 0x00})
	if _, err := ReadFile(short); !errors.Is(err, ErrTruncated) {
		t.Errorf("ReadFile(short) error = %v, want ErrTruncated", err)
	}

	if _, err := ReadFile(filepath.Join(dir, "gone.amp")); !errors.Is(err, ErrUnreadable) {
		t.Errorf("ReadFile(missing) error = %v, want ErrUnreadable", err)
	}
}
