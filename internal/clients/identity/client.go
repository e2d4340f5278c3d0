package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/Jackson-Multifacet/Jackson-Multifacet/internal/entity"
	"github.com/Jackson-Multifacet/Jackson-Multifacet/pkg/config"
)

const (
	retryMax     = 3
	retryWaitMin = time.Second
	retryWaitMax = time.Second * 5
	timeout      = time.Second * 10
)

// Client verifies provider-issued ID tokens against the identity provider
// and returns the verified profile.
type Client struct {
	client  *http.Client
	baseURL string
}

func NewClient(cfg config.Config) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = retryMax
	retryClient.RetryWaitMin = retryWaitMin
	retryClient.RetryWaitMax = retryWaitMax
	retryClient.HTTPClient.Timeout = timeout

	retryClient.Logger = nil

	return &Client{
		client:  retryClient.StandardClient(),
		baseURL: cfg.IdentityProviderURL,
	}
}

type verifyResponse struct {
	Sub     string `json:"sub"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

func (c *Client) VerifyIDToken(ctx context.Context, idToken string) (entity.ExternalIdentity, error) {
	endpoint := c.baseURL + "/tokeninfo"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return entity.ExternalIdentity{}, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+idToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return entity.ExternalIdentity{}, fmt.Errorf("send request: %w", err)
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return entity.ExternalIdentity{}, fmt.Errorf("read body: %w", err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized, http.StatusBadRequest:
		return entity.ExternalIdentity{}, entity.ErrInvalidToken
	default:
		return entity.ExternalIdentity{}, fmt.Errorf("identity provider: status %d", resp.StatusCode)
	}

	var verified verifyResponse
	if err := json.Unmarshal(body, &verified); err != nil {
		return entity.ExternalIdentity{}, fmt.Errorf("decode response: %w", err)
	}

	if verified.Email == "" {
		return entity.ExternalIdentity{}, entity.ErrInvalidToken
	}

	return entity.ExternalIdentity{
		Subject:   verified.Sub,
		Email:     normalizeEmail(verified.Email),
		Name:      verified.Name,
		AvatarURL: verified.Picture,
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
