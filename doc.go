// Package tonecodec reads and writes the tone adjustment files of an image
// editor and converts them to and from an editable text form.
//
// # Overview
//
// Two binary formats are supported:
//   - Curves (.acv): piecewise tone curves given by control points, stored
//     as big-endian 16-bit fields.
//   - Arbitrary map (.amp): one 256-entry byte lookup table per channel,
//     concatenated with no header.
//
// Each format has a codec implementing [Codec]: Decode and Encode handle the
// file bytes, Render and Parse handle the text. Curves text cannot be parsed
// back and curves cannot be encoded; those operations return [ErrUnsupported].
//
// # Quick Start
//
//	import "github.com/gogpu/tonecodec"
//
//	// Show a file
//	doc, err := tonecodec.ReadFile("contrast.amp")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(doc.Text())
//
//	// Save edited text
//	format, err := tonecodec.WriteFile("contrast-edited.amp", editedText)
//
// # Text Form
//
// Map text is the display name line followed by the rendered body:
//
//	contrast.amp
//	Curves Count:1
//	Values at: 000 001 002 ... 255
//	Curve 00:  000 002 004 ... 255
//
// The first three lines are a header; every following line is one channel.
// Parsing strips the 11-character "Curve xx:  " label and reads exactly 256
// space-separated decimal bytes. Any error rejects the whole text.
//
// # Errors
//
// Every malformed input yields an error value matching one of the sentinel
// errors ([ErrTruncated], [ErrUnreadable], [ErrUnrecognizedFormat],
// [ErrParseSyntax], [ErrUnsupported], [ErrNoKnownFormat]). Nothing is retried
// and no partial result is returned.
package tonecodec

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
