// Package storage talks to a Supabase-compatible object store over its REST
// surface. Only upload, remove and public-URL derivation are needed.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"finbook-backend/internal/config"
	domain "finbook-backend/internal/domain/storage"
	"finbook-backend/pkg/apperr"
)

type Client struct {
	baseURL string
	key     string
	bucket  string
	http    *http.Client
}

// New returns a working client when credentials are present, otherwise a
// store whose every call fails with a configuration error. Handlers stay
// wired either way.
func New(cfg config.StorageConfig) domain.ObjectStore {
	if cfg.URL == "" || cfg.Key == "" {
		return unconfiguredStore{}
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.URL, "/"),
		key:     cfg.Key,
		bucket:  cfg.Bucket,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Client) Put(ctx context.Context, path string, data []byte, contentType string) (string, error) {
	url := fmt.Sprintf("%s/storage/v1/object/%s/%s", c.baseURL, c.bucket, path)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.key)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("x-upsert", "true")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return "", fmt.Errorf("storage upload %s: %s", path, readError(resp))
	}
	return c.PublicURL(path), nil
}

func (c *Client) Remove(ctx context.Context, path string) error {
	url := fmt.Sprintf("%s/storage/v1/object/%s/%s", c.baseURL, c.bucket, path)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.key)

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 && resp.StatusCode != http.StatusNotFound {
		return fmt.Errorf("storage remove %s: %s", path, readError(resp))
	}
	return nil
}

func (c *Client) PublicURL(path string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", c.baseURL, c.bucket, path)
}

func readError(resp *http.Response) string {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	msg := strings.TrimSpace(string(body))
	if msg == "" {
		return resp.Status
	}
	return resp.Status + " " + msg
}

// unconfiguredStore fails every call fast so the rest of the API keeps
// working without storage credentials.
type unconfiguredStore struct{}

func (unconfiguredStore) Put(context.Context, string, []byte, string) (string, error) {
	return "", apperr.Unconfigured("object storage is not configured")
}

func (unconfiguredStore) Remove(context.Context, string) error {
	return apperr.Unconfigured("object storage is not configured")
}

func (unconfiguredStore) PublicURL(string) string { return "" }
