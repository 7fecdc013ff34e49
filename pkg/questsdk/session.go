package questsdk

import (
	"context"
	"net/http"
	"time"
)

// Session holds a wallet session token. Tokens are not refreshed; log in
// again once Expired reports true.
type Session struct {
	client    *Client
	token     string
	expiresAt time.Time
	user      SessionUser
}

// Login issues a session for wallet. Proof of wallet ownership happens
// before this call.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*Session, error) {
	var out LoginResponse
	if err := c.doJSON(ctx, http.MethodPost, "/v1/auth/login", req, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}

	return &Session{
		client:    c,
		token:     out.Token,
		expiresAt: time.Now().Add(time.Duration(out.ExpiresIn) * time.Second),
		user:      out.User,
	}, nil
}

// VerifyToken asks the server whether token is still valid.
func (c *Client) VerifyToken(ctx context.Context, token string) (*VerifyResponse, error) {
	var out VerifyResponse
	if err := c.doJSON(ctx, http.MethodPost, "/v1/auth/verify", VerifyRequest{Token: token}, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) Token() string        { return s.token }
func (s *Session) User() SessionUser    { return s.user }
func (s *Session) ExpiresAt() time.Time { return s.expiresAt }
func (s *Session) Expired() bool        { return !time.Now().Before(s.expiresAt) }

func (s *Session) authHeaders() map[string]string {
	return map[string]string{"Authorization": "Bearer " + s.token}
}

// Me returns the profile of the session's user.
func (s *Session) Me(ctx context.Context) (*UserProfile, error) {
	var out UserProfile
	if err := s.client.doJSON(ctx, http.MethodGet, "/v1/users/me", nil, s.authHeaders(), &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) Verify(ctx context.Context) (*VerifyResponse, error) {
	return s.client.VerifyToken(ctx, s.token)
}
