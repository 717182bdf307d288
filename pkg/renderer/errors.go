package renderer

import "errors"

var (
	ErrInvalidOptions = errors.New("renderer: invalid render options")
	ErrInvalidCamera  = errors.New("renderer: invalid camera configuration")
	ErrInterrupted    = errors.New("renderer: render interrupted")
)
