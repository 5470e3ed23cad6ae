package model

import "errors"

var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidSnapshot = errors.New("invalid snapshot format")
	ErrNoSteps         = errors.New("recipe has no steps")
)
