package aiff

import "errors"

var (
	ErrNotAiffFile       = errors.New("not an AIFF file")
	ErrUnsupportedLayout = errors.New("only mono and stereo AIFF supported")
	ErrUnsupportedDepth  = errors.New("unsupported AIFF bit depth")
)
