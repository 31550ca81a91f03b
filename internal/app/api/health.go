package api

import (
	"context"
	"net/http"
)

// Health returns the backend's status payload. Its shape is not fixed; it is
// only used for display.
func (c *Client) Health(ctx context.Context) (map[string]any, error) {
	payload := map[string]any{}
	if err := c.doJSON(ctx, http.MethodGet, "/health/", nil, nil, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}
