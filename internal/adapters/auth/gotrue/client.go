// Package gotrue implementa o provedor de auth dos administradores contra
// uma instância GoTrue (Supabase Auth).
package gotrue

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"vet-clinic-records/internal/platform/httpclient"
)

var (
	ErrNotConfigured = errors.New("gotrue client not configured")
	ErrUnauthorized  = errors.New("gotrue unauthorized")
	ErrUpstream      = errors.New("gotrue upstream error")
)

type Config struct {
	BaseURL string
	APIKey  string

	// Timeout das chamadas HTTP; zero usa o default do httpclient.
	Timeout time.Duration
}

type Client struct {
	http   *httpclient.Client
	apiKey string
}

func NewClient(cfg Config) (*Client, error) {
	hc, err := httpclient.NewWithBaseURL(strings.TrimSpace(cfg.BaseURL), cfg.Timeout)
	if err != nil {
		return nil, err
	}
	return &Client{
		http:   hc,
		apiKey: strings.TrimSpace(cfg.APIKey),
	}, nil
}

func (c *Client) IsConfigured() bool {
	return c != nil && c.http != nil && c.http.BaseURL != "" && c.apiKey != ""
}

type userPayload struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	UserMetadata struct {
		Name string `json:"name"`
	} `json:"user_metadata"`
}

type tokenResponse struct {
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
	User        userPayload `json:"user"`
}

// PasswordGrant troca email+senha por um access token.
func (c *Client) PasswordGrant(ctx context.Context, email, password string) (tokenResponse, error) {
	if !c.IsConfigured() {
		return tokenResponse{}, ErrNotConfigured
	}

	var out tokenResponse
	err := c.http.DoJSON(ctx, "POST", "/token?grant_type=password",
		c.headers(""),
		map[string]string{
			"email":    email,
			"password": password,
		},
		&out,
	)
	if err != nil {
		return tokenResponse{}, mapError(err)
	}
	if strings.TrimSpace(out.AccessToken) == "" || strings.TrimSpace(out.User.ID) == "" {
		return tokenResponse{}, fmt.Errorf("%w: resposta sem access_token", ErrUpstream)
	}
	return out, nil
}

// GetUser resolve o usuário dono do token.
func (c *Client) GetUser(ctx context.Context, token string) (userPayload, error) {
	if !c.IsConfigured() {
		return userPayload{}, ErrNotConfigured
	}

	var out userPayload
	err := c.http.DoJSON(ctx, "GET", "/user", c.headers(token), nil, &out)
	if err != nil {
		return userPayload{}, mapError(err)
	}
	if strings.TrimSpace(out.ID) == "" {
		return userPayload{}, fmt.Errorf("%w: resposta sem id", ErrUpstream)
	}
	return out, nil
}

// Logout revoga o token no provedor.
func (c *Client) Logout(ctx context.Context, token string) error {
	if !c.IsConfigured() {
		return ErrNotConfigured
	}
	if err := c.http.DoJSON(ctx, "POST", "/logout", c.headers(token), nil, nil); err != nil {
		return mapError(err)
	}
	return nil
}

func (c *Client) headers(token string) map[string]string {
	h := map[string]string{
		"apikey": c.apiKey,
	}
	if token != "" {
		h["Authorization"] = "Bearer " + token
	}
	return h
}

func mapError(err error) error {
	var httpErr *httpclient.HTTPError
	if errors.As(err, &httpErr) {
		switch httpErr.StatusCode {
		case 400, 401, 403:
			return ErrUnauthorized
		}
		return fmt.Errorf("%w: status=%d", ErrUpstream, httpErr.StatusCode)
	}
	return fmt.Errorf("%w: %v", ErrUpstream, err)
}
