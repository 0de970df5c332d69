// Package cas talks to the external single-sign-on ticket service. A ticket
// is a single-use credential; this client exchanges it for user identity.
package cas

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

var (
	// ErrUnreachable means the validator could not be reached at all.
	ErrUnreachable = errors.New("ticket validator unreachable")
	// ErrAuthenticationFailed means the validator answered but refused the
	// ticket or returned a malformed body.
	ErrAuthenticationFailed = errors.New("ticket authentication failed")
)

type UserInfo struct {
	ID       string `json:"id"`
	UID      string `json:"uid"`
	UserName string `json:"userName"`
	Username string `json:"username"`
}

type validateResponse struct {
	Authenticated bool      `json:"authenticated"`
	User          *UserInfo `json:"user"`
}

type Client struct {
	serverURL  string
	serviceURL string
	httpClient *http.Client
}

func NewClient(serverURL, serviceURL string) *Client {
	return &Client{
		serverURL:  serverURL,
		serviceURL: serviceURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// ValidateTicket exchanges a ticket for the holder's identity via
// GET {server}/serviceValidate?ticket=...&service=...
func (c *Client) ValidateTicket(ctx context.Context, ticket string) (UserInfo, error) {
	query := url.Values{}
	query.Set("ticket", ticket)
	query.Set("service", c.serviceURL)
	validateURL := fmt.Sprintf("%v/serviceValidate?%v", c.serverURL, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, validateURL, nil)
	if err != nil {
		return UserInfo{}, fmt.Errorf("http.NewRequestWithContext -> %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return UserInfo{}, fmt.Errorf("%w -> %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return UserInfo{}, fmt.Errorf("%w: validator returned %v", ErrAuthenticationFailed, resp.StatusCode)
	}

	var body validateResponse
	if err = json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return UserInfo{}, fmt.Errorf("%w: invalid validator response", ErrAuthenticationFailed)
	}

	if !body.Authenticated || body.User == nil {
		return UserInfo{}, fmt.Errorf("%w: ticket rejected", ErrAuthenticationFailed)
	}
	if body.User.ID == "" || body.User.UID == "" {
		return UserInfo{}, fmt.Errorf("%w: missing user information", ErrAuthenticationFailed)
	}

	return *body.User, nil
}

// LoginURL is where an unauthenticated client should be redirected.
func (c *Client) LoginURL() string {
	query := url.Values{}
	query.Set("service", c.serviceURL)

	return fmt.Sprintf("%v/login?%v", c.serverURL, query.Encode())
}

// LogoutURL terminates the single-sign-on session upstream.
func (c *Client) LogoutURL() string {
	query := url.Values{}
	query.Set("service", c.serviceURL)

	return fmt.Sprintf("%v/logout?%v", c.serverURL, query.Encode())
}
