package main

import "errors"

var (
	errUnknownFormat = errors.New("unknown output format")
	errNoBaseFolder  = errors.New("no base folder set")
)
