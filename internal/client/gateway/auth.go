package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/iudanet/rollbook/pkg/api"
)

// Login выполняет аутентификацию и возвращает access token
func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.LoginResponse, error) {
	var resp api.LoginResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/login", req, &resp); err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}
