package wav

import "errors"

var (
	ErrNotWavFile        = errors.New("not a WAV file")
	ErrEmptySignal       = errors.New("empty signal")
	ErrUnsupportedLayout = errors.New("only mono and stereo WAV supported")
)
