package storage

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/Jackson-Multifacet/Jackson-Multifacet/internal/entity"
	"github.com/Jackson-Multifacet/Jackson-Multifacet/pkg/config"
)

const timeout = time.Second * 30

// Client pushes staged attachments to the object store. Objects are written
// once and addressed by key; the returned URL is the public read location.
type Client struct {
	httpClient *http.Client
	baseURL    string
	publicURL  string
}

func NewClient(cfg config.Config) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL:   cfg.StorageBaseURL,
		publicURL: cfg.StoragePublicURL,
	}
}

func (c *Client) Upload(ctx context.Context, key, contentType string, data []byte) (string, error) {
	endpoint := fmt.Sprintf("%s/%s", c.baseURL, key)

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, endpoint, bytes.NewReader(data))
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", contentType)
	req.ContentLength = int64(len(data))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", entity.ErrUploadFailed, err)
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("%w: unexpected code %d", entity.ErrUploadFailed, resp.StatusCode)
	}

	return fmt.Sprintf("%s/%s", c.publicURL, key), nil
}
