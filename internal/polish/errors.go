package polish

import "errors"

var (
	ErrTextRequired = errors.New("text is required")
	ErrTextTooLong  = errors.New("text exceeds the maximum length")
	ErrPolishFailed = errors.New("text polish failed")
)
