package template

import "errors"

var (
	ErrNoFiles   = errors.New("no files provided")
	ErrOddParams = errors.New("odd number of params")
)
