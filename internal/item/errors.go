package item

import "errors"

var (
	ErrItemNotFound   = errors.New("item not found")
	ErrInvalidPayload = errors.New("invalid payload")
	ErrUnavailable    = errors.New("item store unavailable")
)
