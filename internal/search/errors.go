package search

import "errors"

var (
	// ErrConnectionFailed indicates the client could not be created or the
	// cluster could not be reached. Use errors.Is() to check.
	ErrConnectionFailed = errors.New("opensearch connection failed")

	// ErrIndexNotFound indicates the requested index does not exist on the
	// cluster. The wrapped message names the index.
	ErrIndexNotFound = errors.New("index not found")

	// ErrUnexpectedResponse indicates the cluster answered with an error
	// status the client has no specific handling for.
	ErrUnexpectedResponse = errors.New("unexpected opensearch response")
)
