package signal

import "errors"

var (
	ErrInvalidArgument = errors.New("invalid argument")
)
