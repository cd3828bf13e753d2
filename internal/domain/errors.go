package domain

import "errors"

var (
	// ErrValidation marks bad or missing caller input.
	ErrValidation = errors.New("validation failed")
	// ErrUnsupportedMediaType marks an upload that is not an accepted image kind.
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	// ErrPayloadTooLarge marks an upload over the size ceiling.
	ErrPayloadTooLarge = errors.New("payload too large")
	// ErrOutOfRange marks a position that is not a valid index into the gallery.
	ErrOutOfRange = errors.New("position out of range")
	// ErrCorruptData marks persisted gallery data that no longer parses.
	ErrCorruptData = errors.New("corrupt gallery data")
)
