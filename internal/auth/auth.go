package auth

import "context"

// Mode selects which credential form the flow presents.
type Mode string

const (
	ModeLogin  Mode = "login"
	ModeSignup Mode = "signup"
)

// Credentials are the transient fields of the auth form. ConfirmPassword is
// only meaningful in signup mode.
type Credentials struct {
	Email           string
	Password        string
	ConfirmPassword string
}

// Session is what a successful authentication yields.
type Session struct {
	Token string `json:"token"`
	Email string `json:"email,omitempty"`
}

// Authenticator is the external auth collaborator. Every operation either
// succeeds with a session or fails with an error carrying a human-readable
// message.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (*Session, error)
	Signup(ctx context.Context, email, password string) (*Session, error)
	LoginWithGoogle(ctx context.Context) (*Session, error)
}

// Messenger is implemented by collaborator errors that carry a message safe
// to surface verbatim to the user.
type Messenger interface {
	UserMessage() string
}
