package simulation

import "errors"

var ErrInvalidRequest = errors.New("invalid request")
