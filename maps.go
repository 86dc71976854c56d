package tonecodec

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ChannelSize is the number of input levels in one map channel.
const ChannelSize = 256

// mapHeaderLines is the number of lines before the first channel in map
// text: the display name, the count line and the index line.
const mapHeaderLines = 3

// mapLabelWidth is the width of the "Curve xx:  " label that starts each
// channel line. It is fixed; labels for channel 100 and above are wider
// when rendered and do not parse back.
const mapLabelWidth = len("Curve xx:  ")

// Channel is a lookup table from input level to output level.
type Channel [ChannelSize]uint8

// MapSet is the content of an arbitrary map (.amp) file.
type MapSet struct {
	Channels []Channel
}

// MapCodec converts arbitrary map files.
//
// The file is a headerless concatenation of 256-byte channels.
type MapCodec struct{}

// Decode splits data into channels. Bytes after the last full channel are
// dropped. Decode never fails.
func (MapCodec) Decode(data []byte) (*MapSet, error) {
	n := len(data) / ChannelSize
	set := &MapSet{Channels: make([]Channel, n)}
	for i := range set.Channels {
		copy(set.Channels[i][:], data[i*ChannelSize:])
	}
	Logger().Debug("tonecodec: decoded map", "channels", n, "dropped", len(data)%ChannelSize)
	return set, nil
}

// Render formats the map with every value as a 3-digit decimal:
//
//	Curves Count:1
//	Values at: 000 001 002 ... 255
//	Curve 00:  000 001 002 ... 255
func (MapCodec) Render(s *MapSet) string {
	var b strings.Builder
	b.Grow((len(s.Channels) + 1) * (mapLabelWidth + ChannelSize*4 + len(newline)))

	b.WriteString("Curves Count:")
	b.WriteString(strconv.Itoa(len(s.Channels)))
	b.WriteString(newline)
	b.WriteString("Values at: ")
	for i := 0; i < ChannelSize; i++ {
		fmt.Fprintf(&b, "%03d ", i)
	}
	for c := range s.Channels {
		b.WriteString(newline)
		fmt.Fprintf(&b, "Curve %02d:  ", c)
		for _, v := range s.Channels[c] {
			fmt.Fprintf(&b, "%03d ", v)
		}
	}
	return b.String()
}

// Parse reads map text as displayed: a display name line, then the
// rendered body. The header lines are not checked. Each channel line loses
// its fixed-width label and must hold exactly 256 space-separated byte
// values. Parse either returns every channel or a *ParseError.
func (MapCodec) Parse(text string) (*MapSet, error) {
	lines := splitLines(text)
	if len(lines) <= mapHeaderLines {
		return nil, &ParseError{Err: ErrTooShort}
	}

	set := &MapSet{Channels: make([]Channel, len(lines)-mapHeaderLines)}
	for c := range set.Channels {
		lineNo := mapHeaderLines + c
		if err := parseChannel(lines[lineNo], &set.Channels[c]); err != nil {
			err.Line = lineNo + 1
			return nil, err
		}
	}

	Logger().Debug("tonecodec: parsed map text", "channels", len(set.Channels))
	return set, nil
}

func parseChannel(line string, ch *Channel) *ParseError {
	if len(line) < mapLabelWidth {
		return &ParseError{Err: ErrLabelWidth}
	}
	tokens := strings.FieldsFunc(line[mapLabelWidth:], func(r rune) bool { return r == ' ' })
	if len(tokens) != ChannelSize {
		return &ParseError{Token: strconv.Itoa(len(tokens)), Err: ErrTokenCount}
	}
	for i, tok := range tokens {
		v, err := strconv.ParseUint(tok, 10, 8)
		if err != nil {
			return &ParseError{Token: tok, Err: ErrInvalidValue}
		}
		ch[i] = uint8(v)
	}
	return nil
}

// Encode concatenates the channels in order.
func (MapCodec) Encode(s *MapSet) ([]byte, error) {
	out := make([]byte, 0, len(s.Channels)*ChannelSize)
	for i := range s.Channels {
		out = append(out, s.Channels[i][:]...)
	}
	return out, nil
}

// LoadMap reads and decodes an arbitrary map file.
func LoadMap(path string) (*MapSet, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, &UnreadableError{Path: path, Err: err}
	}
	return MapCodec{}.Decode(data)
}

// splitLines splits on LF or CRLF. One final line terminator is ignored so
// that text saved by an editor parses the same as the text it displayed.
func splitLines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	text = strings.TrimSuffix(text, "\r")
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}
