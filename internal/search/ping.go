package search

import (
	"context"
	"errors"
)

// Ping verifies cluster connectivity with a single info call. The CLI never
// calls it on the request path; it exists for diagnostics and tests.
func (c *Client) Ping(ctx context.Context) error {
	res, err := c.os.Info(c.os.Info.WithContext(ctx))
	if err != nil {
		return errors.Join(ErrConnectionFailed, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return errors.Join(ErrConnectionFailed, errors.New(res.Status()))
	}
	return nil
}
