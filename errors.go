package img2ascii

import "fmt"

// DecodeError reports input bytes that could not be decoded as an image.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return "img2ascii: decode: " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// InvalidDimensionError reports a configuration whose computed character
// grid has no usable width or height.
type InvalidDimensionError struct {
	Width  int
	Height int
}

func (e *InvalidDimensionError) Error() string {
	return fmt.Sprintf("img2ascii: invalid %dx%d character grid", e.Width, e.Height)
}
