package hiredesk

import (
	"context"
	"errors"

	"github.com/Shreedhar-Khorate/hiredesk-cli/internal/auth"
)

// Auth adapts the client to the auth collaborator contract. The Google
// identity token is resolved once at construction, federated sign-in then
// needs no extra input.
type Auth struct {
	client        *Client
	googleIDToken string
}

func NewAuth(client *Client, googleIDToken string) *Auth {
	return &Auth{client: client, googleIDToken: googleIDToken}
}

func (a *Auth) Login(ctx context.Context, email, password string) (*auth.Session, error) {
	return a.credentialAuth(ctx, loginPath, email, password)
}

func (a *Auth) Signup(ctx context.Context, email, password string) (*auth.Session, error) {
	return a.credentialAuth(ctx, signupPath, email, password)
}

func (a *Auth) LoginWithGoogle(ctx context.Context) (*auth.Session, error) {
	if a.googleIDToken == "" {
		return nil, errors.New("google identity token is not configured")
	}

	payload := map[string]string{"id_token": a.googleIDToken}

	var session auth.Session
	if err := a.client.postJSON(ctx, a.client.APIURL+googlePath, payload, &session); err != nil {
		return nil, err
	}

	return &session, nil
}

func (a *Auth) credentialAuth(ctx context.Context, path, email, password string) (*auth.Session, error) {
	payload := map[string]string{
		"email":    email,
		"password": password,
	}

	var session auth.Session
	if err := a.client.postJSON(ctx, a.client.APIURL+path, payload, &session); err != nil {
		return nil, err
	}

	return &session, nil
}
