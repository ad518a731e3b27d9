package vorbis

import "errors"

var (
	ErrUnsupportedLayout = errors.New("only mono and stereo Vorbis supported")
)
