package scheduler

import "errors"

var (
	ErrInvalidOperation = errors.New("invalid operation")
	ErrInvalidProcess   = errors.New("invalid process")
	ErrInvalidQuantum   = errors.New("invalid time quantum")
	ErrUnknownAlgorithm = errors.New("unknown algorithm")
)
