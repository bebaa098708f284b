package config

import "errors"

var (
	// ErrNoEndpoint indicates that none of the supported environment shapes
	// produced a cluster endpoint. Use errors.Is() to check.
	ErrNoEndpoint = errors.New("no opensearch endpoint configured")

	// ErrInvalidEndpoint indicates that connection variables were set but
	// could not be parsed into a usable endpoint.
	ErrInvalidEndpoint = errors.New("invalid opensearch endpoint")

	// ErrParsingEnv is returned when environment variables cannot be read
	// into the raw configuration struct.
	ErrParsingEnv = errors.New("failed to parse opensearch environment variables")
)
