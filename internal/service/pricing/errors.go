package pricing

import "errors"

var (
	// ErrInvalidInterval возвращается, когда время выезда раньше времени въезда
	ErrInvalidInterval = errors.New("exit time is before entry time")
)
