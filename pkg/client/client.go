// AngelaMos | 2026
// client.go

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultTimeout = 30 * time.Second

// APIError is a structured failure returned by the server.
type APIError struct {
	StatusCode int    `json:"-"`
	Code       string `json:"code"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s (%s)", e.Message, e.Code)
}

// Client talks to the storefront API and keeps the login state in its
// session store. It is safe for concurrent use once constructed.
type Client struct {
	baseURL  string
	http     *http.Client
	sessions *SessionStore
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

func WithSessionStore(store *SessionStore) Option {
	return func(c *Client) {
		c.sessions = store
	}
}

func New(baseURL string, opts ...Option) (*Client, error) {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.sessions == nil {
		path, err := DefaultSessionPath()
		if err != nil {
			return nil, err
		}
		c.sessions = NewSessionStore(path)
	}

	return c, nil
}

// Register creates an account. It does not log in; call Login after.
func (c *Client) Register(
	ctx context.Context,
	name, email, password string,
) (*Identity, error) {
	body := map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
	}

	var identity Identity
	err := c.do(ctx, http.MethodPost, "/v1/auth/signup", body, "", &identity)
	if err != nil {
		return nil, err
	}

	return &identity, nil
}

// Login exchanges credentials for a token and persists the session.
func (c *Client) Login(
	ctx context.Context,
	email, password string,
) (*Session, error) {
	body := map[string]string{
		"email":    email,
		"password": password,
	}

	var resp struct {
		User  Identity `json:"user"`
		Token struct {
			Token     string    `json:"token"`
			ExpiresAt time.Time `json:"expires_at"`
		} `json:"token"`
	}

	err := c.do(ctx, http.MethodPost, "/v1/auth/login", body, "", &resp)
	if err != nil {
		return nil, err
	}

	session := &Session{
		Token:     resp.Token.Token,
		ExpiresAt: resp.Token.ExpiresAt,
		User:      resp.User,
	}

	if err := c.sessions.Establish(session); err != nil {
		return nil, err
	}

	return session, nil
}

// Me asks the server who the stored token belongs to.
func (c *Client) Me(ctx context.Context) (*Identity, error) {
	session, err := c.sessions.Current()
	if err != nil {
		return nil, err
	}

	var identity Identity
	err = c.do(ctx, http.MethodGet, "/v1/auth/me", nil, session.Token, &identity)
	if err != nil {
		return nil, err
	}

	return &identity, nil
}

// CurrentIdentity reads the locally stored identity without a round trip.
func (c *Client) CurrentIdentity() (*Identity, error) {
	session, err := c.sessions.Current()
	if err != nil {
		return nil, err
	}

	return &session.User, nil
}

// Logout discards the stored session. Tokens are stateless, so the server
// is not involved; the old token stays valid until it expires on its own.
func (c *Client) Logout() error {
	return c.sessions.Clear()
}

func (c *Client) do(
	ctx context.Context,
	method, path string,
	body any,
	token string,
	out any,
) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(
		ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // read-side close

	data, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	var envelope struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
		Error   *APIError       `json:"error"`
	}

	if len(data) > 0 {
		if err := json.Unmarshal(data, &envelope); err != nil {
			return fmt.Errorf("decode response (status %d): %w",
				resp.StatusCode, err)
		}
	}

	if resp.StatusCode >= 400 || (len(data) > 0 && !envelope.Success) {
		apiErr := envelope.Error
		if apiErr == nil {
			apiErr = &APIError{
				Code:    "UNKNOWN",
				Message: http.StatusText(resp.StatusCode),
			}
		}
		apiErr.StatusCode = resp.StatusCode
		return apiErr
	}

	if out != nil && len(envelope.Data) > 0 {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return fmt.Errorf("decode response data: %w", err)
		}
	}

	return nil
}

// IsUnauthorized reports whether err is a 401 from the server.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) &&
		apiErr.StatusCode == http.StatusUnauthorized
}
