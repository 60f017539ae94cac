package web

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/glob-dev/users-gateway/internal/models"
)

// GatewayError is a non-2xx answer from the users gateway.
type GatewayError struct {
	StatusCode int
	Reason     string
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("gateway returned %d: %s", e.StatusCode, e.Reason)
}

// Client talks to the users gateway over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient returns a Client for the gateway at baseURL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// AddUser creates a user on the gateway and returns the stored name.
func (c *Client) AddUser(ctx context.Context, userID int64, userName, creationDate string) (string, error) {
	payload, err := json.Marshal(map[string]string{
		"user_name":     userName,
		"creation_date": creationDate,
	})
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/users/%d", c.baseURL, userID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	var resp struct {
		UserAdded string `json:"user_added"`
	}
	if err := c.do(req, &resp); err != nil {
		return "", err
	}
	return resp.UserAdded, nil
}

// GetUser fetches a single user from the gateway.
func (c *Client) GetUser(ctx context.Context, userID int64) (models.User, error) {
	url := fmt.Sprintf("%s/users/%d", c.baseURL, userID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return models.User{}, err
	}

	var user models.User
	if err := c.do(req, &user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// ListUsers fetches every user from the gateway.
func (c *Client) ListUsers(ctx context.Context) ([]models.User, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/users", nil)
	if err != nil {
		return nil, err
	}

	var resp struct {
		Users []models.User `json:"users"`
	}
	if err := c.do(req, &resp); err != nil {
		return nil, err
	}
	return resp.Users, nil
}

// do sends the request and decodes the answer into out. A non-200 answer
// becomes a GatewayError carrying the gateway's reason.
func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		gwErr := &GatewayError{StatusCode: resp.StatusCode, Reason: resp.Status}
		var body struct {
			Reason string `json:"reason"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Reason != "" {
			gwErr.Reason = body.Reason
		}
		return gwErr
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
