package models

import "errors"

// Sentinel errors shared by repositories and services.
// Check with errors.Is: errors.Is(err, models.ErrNotFound).
var (
	ErrNotFound   = errors.New("record not found")
	ErrValidation = errors.New("invalid input")
)
