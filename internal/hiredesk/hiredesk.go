// Package hiredesk is a typed client for the HireDesk recruiting API.
package hiredesk

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

const (
	defaultAPIURL = "http://localhost:8000"
	userAgent     = "hiredesk-cli (https://github.com/Shreedhar-Khorate/hiredesk-cli)"

	jobsPath       = "/recruitment/jobs/"
	uploadPath     = "/recruitment/upload-resume/"
	candidatesPath = "/recruitment/candidates/"
	loginPath      = "/auth/login"
	signupPath     = "/auth/signup"
	googlePath     = "/auth/google"
)

type Client struct {
	token      string
	logger     *zap.Logger
	HTTPClient *http.Client
	UserAgent  string
	APIURL     string
}

func New(token string, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		token:  token,
		APIURL: defaultAPIURL,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger:    logger,
		UserAgent: userAgent,
	}
}

// SetToken replaces the session token used for the Authorization header,
// e.g. right after a login.
func (c *Client) SetToken(token string) {
	c.token = token
}
