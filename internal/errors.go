package internal

import (
	"errors"
)

var (
	ErrNotFound = errors.New("no such file or object")
	ErrRange    = errors.New("offset out of range")
	ErrIO       = errors.New("i/o error")
	ErrFormat   = errors.New("cannot format line")
	ErrUsage    = errors.New("invalid usage")
)
