package tonecodec

// Codec is the four-operation contract shared by both tone file formats.
//
// Decode and Parse construct a fresh value; Render and Encode consume one.
// A failed Decode or Parse returns the zero T and an error, never a partial value.
type Codec[T any] interface {
	// Decode reads the binary file layout.
	Decode(data []byte) (T, error)

	// Render produces the text body (without the display name line).
	Render(v T) string

	// Parse reads text as shown to the user, display name line included.
	Parse(text string) (T, error)

	// Encode produces the binary file layout.
	Encode(v T) ([]byte, error)
}

var (
	_ Codec[*CurveSet] = CurveCodec{}
	_ Codec[*MapSet]   = MapCodec{}
)
