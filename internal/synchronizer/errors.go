package synchronizer

import "errors"

var (
	ErrDecodeEvent = errors.New("cannot decode event")
	ErrBusClosed   = errors.New("event bus is closed")
)
