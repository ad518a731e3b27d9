package frequency

import "errors"

var (
	ErrInvalidPitch = errors.New("invalid pitch")
)
