package store

import "errors"

var (
	ErrRecordNotFound       = errors.New("record not found")
	ErrDuplicateCorrelation = errors.New("confirmation with this correlation id already recorded")
	ErrInvalidOutcome       = errors.New("invalid confirmation outcome")
)
