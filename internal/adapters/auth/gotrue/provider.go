package gotrue

import (
	"context"
	"strings"

	"vet-clinic-records/internal/ports/auth"
)

// Provider adapta o Client à porta auth.Provider. Instanciado em main
// quando GOTRUE_URL está configurada; sem ela o serviço sobe sem admins.
type Provider struct {
	client *Client
}

func NewProvider(client *Client) *Provider {
	return &Provider{client: client}
}

func (p *Provider) SignIn(ctx context.Context, email, password string) (auth.Session, error) {
	if p == nil || p.client == nil {
		return auth.Session{}, ErrNotConfigured
	}

	resp, err := p.client.PasswordGrant(ctx, email, password)
	if err != nil {
		return auth.Session{}, err
	}
	return auth.Session{
		AccessToken: resp.AccessToken,
		Identity:    toIdentity(resp.User),
	}, nil
}

func (p *Provider) Verify(ctx context.Context, token string) (auth.Identity, error) {
	if p == nil || p.client == nil {
		return auth.Identity{}, ErrNotConfigured
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Identity{}, ErrUnauthorized
	}

	u, err := p.client.GetUser(ctx, token)
	if err != nil {
		return auth.Identity{}, err
	}
	return toIdentity(u), nil
}

func (p *Provider) SignOut(ctx context.Context, token string) error {
	if p == nil || p.client == nil {
		return ErrNotConfigured
	}
	return p.client.Logout(ctx, token)
}

func toIdentity(u userPayload) auth.Identity {
	name := strings.TrimSpace(u.UserMetadata.Name)
	if name == "" {
		name = u.Email
	}
	return auth.Identity{
		UserID: u.ID,
		Email:  u.Email,
		Name:   name,
	}
}
