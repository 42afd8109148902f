// Package github pushes session snapshots to a file in a GitHub repository
// via the contents API: a GET fetches the current blob SHA, a PUT uploads
// the base64-encoded replacement.
package github

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// Config holds the backup destination.
type Config struct {
	APIBaseURL string
	Repo       string // "owner/name"
	FilePath   string // path inside the repository
	Branch     string
	Token      string
	Retries    uint64 // extra attempts after the first; zero keeps fire-and-forget semantics
}

// Client implements usecase.BackupStore against the GitHub contents API.
type Client struct {
	cfg        Config
	httpClient *http.Client
}

// NewClient creates a backup client.
func NewClient(cfg Config) *Client {
	cfg.APIBaseURL = strings.TrimSuffix(cfg.APIBaseURL, "/")
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Client) contentsURL() string {
	return fmt.Sprintf("%s/repos/%s/contents/%s", c.cfg.APIBaseURL, c.cfg.Repo, c.cfg.FilePath)
}

// fileSHA fetches the current blob SHA of the backup file. An empty SHA
// means the file does not exist yet and the PUT will create it.
func (c *Client) fileSHA(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.contentsURL(), nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.Token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", nil
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("fetch backup file sha: status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload struct {
		SHA string `json:"sha"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("decode backup file sha: %w", err)
	}
	return payload.SHA, nil
}

// Push uploads the snapshot, overwriting any previous backup. By default it
// is a single attempt whose failure is reported and not retried; Retries
// adds an exponential backoff on top for deployments that want it.
func (c *Client) Push(ctx context.Context, content []byte) error {
	op := func() error {
		return c.push(ctx, content)
	}
	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), c.cfg.Retries),
		ctx,
	)
	return backoff.Retry(op, policy)
}

func (c *Client) push(ctx context.Context, content []byte) error {
	sha, err := c.fileSHA(ctx)
	if err != nil {
		return err
	}

	payload := map[string]string{
		"message": "Auto-backup jurnal BUMDes",
		"content": base64.StdEncoding.EncodeToString(content),
		"branch":  c.cfg.Branch,
	}
	if sha != "" {
		payload["sha"] = sha
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.contentsURL(), bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.Token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		detail, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("backup upload failed: status %d: %s", resp.StatusCode, strings.TrimSpace(string(detail)))
	}
	return nil
}
