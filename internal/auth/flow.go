package auth

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/Shreedhar-Khorate/hiredesk-cli/internal/flow"
)

// Fixed user-facing messages for the auth flow.
const (
	PasswordMismatchMessage = "Passwords do not match"
	GoogleFailedMessage     = "Google sign-in failed"
	LoginFailedMessage      = "Login failed"
	SignupFailedMessage     = "Signup failed"
)

// Flow is the login/signup state machine: a user-toggleable mode, credential
// fields and the shared busy/success/error result. Submit and the federated
// sign-in share one busy flag, so only one request is in flight at a time.
type Flow struct {
	auth   Authenticator
	logger *zap.Logger
	mode   Mode
	creds  Credentials
	result flow.Result[*Session]
	closed bool
}

func NewFlow(auth Authenticator, mode Mode, logger *zap.Logger) *Flow {
	if logger == nil {
		logger = zap.NewNop()
	}
	if mode != ModeSignup {
		mode = ModeLogin
	}
	return &Flow{auth: auth, mode: mode, logger: logger}
}

func (f *Flow) Mode() Mode {
	return f.mode
}

// SwitchMode changes between login and signup, resetting all credential
// fields and any previous error so nothing leaks across modes.
func (f *Flow) SwitchMode(mode Mode) {
	if mode != ModeLogin && mode != ModeSignup {
		return
	}
	f.mode = mode
	f.creds = Credentials{}
	f.result = flow.Result[*Session]{}
	f.closed = false
}

func (f *Flow) SetCredentials(creds Credentials) {
	f.creds = creds
}

// Status returns the outcome of the last attempt.
func (f *Flow) Status() flow.Result[*Session] {
	return f.result
}

// CloseRequested reports whether the flow asked its host to close after a
// successful authentication.
func (f *Flow) CloseRequested() bool {
	return f.closed
}

// Submit performs login or signup depending on the current mode. In signup
// mode a password/confirmation mismatch fails immediately without contacting
// the collaborator.
func (f *Flow) Submit(ctx context.Context) flow.Result[*Session] {
	if f.result.Busy() {
		return f.result
	}

	if f.mode == ModeSignup && f.creds.Password != f.creds.ConfirmPassword {
		f.result = flow.Result[*Session]{State: flow.StateError, Message: PasswordMismatchMessage}
		return f.result
	}

	f.result = flow.Result[*Session]{State: flow.StateBusy}

	var (
		session *Session
		err     error
	)
	switch f.mode {
	case ModeSignup:
		session, err = f.auth.Signup(ctx, f.creds.Email, f.creds.Password)
	default:
		session, err = f.auth.Login(ctx, f.creds.Email, f.creds.Password)
	}

	if err != nil {
		f.fail(err, f.fallbackMessage())
		return f.result
	}

	f.succeed(session)
	return f.result
}

// LoginWithGoogle performs the federated sign-in. It is usable independently
// of the credential form but shares the same busy flag.
func (f *Flow) LoginWithGoogle(ctx context.Context) flow.Result[*Session] {
	if f.result.Busy() {
		return f.result
	}

	f.result = flow.Result[*Session]{State: flow.StateBusy}

	session, err := f.auth.LoginWithGoogle(ctx)
	if err != nil {
		f.fail(err, GoogleFailedMessage)
		return f.result
	}

	f.succeed(session)
	return f.result
}

func (f *Flow) succeed(session *Session) {
	f.closed = true
	f.result = flow.Result[*Session]{State: flow.StateSuccess, Value: session}
}

func (f *Flow) fail(err error, fallback string) {
	f.logger.Debug("authentication failed", zap.String("mode", string(f.mode)), zap.Error(err))

	msg := collaboratorMessage(err)
	if msg == "" {
		msg = fallback
	}
	f.result = flow.Result[*Session]{State: flow.StateError, Message: msg}
}

func (f *Flow) fallbackMessage() string {
	if f.mode == ModeSignup {
		return SignupFailedMessage
	}
	return LoginFailedMessage
}

func collaboratorMessage(err error) string {
	var messenger Messenger
	if errors.As(err, &messenger) {
		return strings.TrimSpace(messenger.UserMessage())
	}
	return ""
}
