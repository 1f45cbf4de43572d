package page

import "errors"

var (
	ErrBadConfig = errors.New("bad config")
	ErrNoPath    = errors.New("no path to navigate to")
)
