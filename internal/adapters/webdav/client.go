// Package webdav implements the remote document transport against a WebDAV
// endpoint: GET/PUT of the JSON document plus PROPFIND/MKCOL to bootstrap
// the collection hierarchy of the configured sub-path.
package webdav

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/wfbarn/wfbarn_app/internal/apperrors"
	"github.com/wfbarn/wfbarn_app/internal/core/domain"
	portsrepo "github.com/wfbarn/wfbarn_app/internal/core/ports/repositories"
)

const (
	requestTimeout  = 15 * time.Second
	methodPropfind  = "PROPFIND"
	methodMkcol     = "MKCOL"
	contentTypeJSON = "application/json"
)

// Client talks to the WebDAV endpoint described by the per-call SyncConfig.
type Client struct {
	httpClient *http.Client
	logger     *slog.Logger
}

var _ portsrepo.RemoteStore = (*Client)(nil)

// NewClient builds a WebDAV client with a bounded request timeout.
func NewClient(logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		httpClient: &http.Client{Timeout: requestTimeout},
		logger:     logger,
	}
}

// Download fetches the remote document. Not-found and conflict responses
// mean "no remote document yet" and return (nil, nil).
func (c *Client) Download(ctx context.Context, cfg domain.SyncConfig) (*domain.Document, error) {
	if !cfg.IsConfigured() {
		return nil, apperrors.ErrSyncNotConfigured
	}

	resp, err := c.do(ctx, cfg, http.MethodGet, documentURL(cfg), nil, nil)
	if err != nil {
		return nil, err
	}
	defer drainAndClose(resp.Body)

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		var doc domain.Document
		if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
			return nil, fmt.Errorf("remote document is not valid JSON: %v: %w", err, apperrors.ErrTransport)
		}
		normalized := doc.Normalize()
		return &normalized, nil
	case resp.StatusCode == http.StatusNotFound, resp.StatusCode == http.StatusConflict:
		// Bootstrap case: nothing uploaded yet.
		return nil, nil
	default:
		return nil, statusError(resp.StatusCode, "download")
	}
}

// Upload writes the document to the remote path, creating every missing
// intermediate collection first.
func (c *Client) Upload(ctx context.Context, cfg domain.SyncConfig, doc domain.Document) error {
	if !cfg.IsConfigured() {
		return apperrors.ErrSyncNotConfigured
	}

	if err := c.ensureCollections(ctx, cfg); err != nil {
		return err
	}

	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}

	resp, err := c.do(ctx, cfg, http.MethodPut, documentURL(cfg), raw, map[string]string{
		"Content-Type": contentTypeJSON,
	})
	if err != nil {
		return err
	}
	defer drainAndClose(resp.Body)

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusConflict:
		return fmt.Errorf("remote path collides with a collection (HTTP 409): %w", apperrors.ErrRemoteConflict)
	default:
		return statusError(resp.StatusCode, "upload")
	}
}

// ensureCollections probes every intermediate collection of the sub-path and
// creates the missing ones. A concurrent client creating the same collection
// is tolerated silently.
func (c *Client) ensureCollections(ctx context.Context, cfg domain.SyncConfig) error {
	base := strings.TrimRight(cfg.BaseURL, "/")
	segments := strings.Split(strings.Trim(cfg.NormalizedSubPath(), "/"), "/")
	if len(segments) < 2 {
		// The document sits directly under the base URL.
		return nil
	}

	current := base
	for _, segment := range segments[:len(segments)-1] {
		current = current + "/" + segment

		resp, err := c.do(ctx, cfg, methodPropfind, current, nil, map[string]string{"Depth": "0"})
		if err != nil {
			return err
		}
		drainAndClose(resp.Body)

		switch {
		case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
			return statusError(resp.StatusCode, "probe collection")
		case resp.StatusCode == http.StatusNotFound:
			if err := c.createCollection(ctx, cfg, current); err != nil {
				return err
			}
		case resp.StatusCode >= 200 && resp.StatusCode < 300, resp.StatusCode == http.StatusMultiStatus:
			// Collection exists.
		default:
			return statusError(resp.StatusCode, "probe collection")
		}
	}
	return nil
}

func (c *Client) createCollection(ctx context.Context, cfg domain.SyncConfig, collectionURL string) error {
	resp, err := c.do(ctx, cfg, methodMkcol, collectionURL, nil, nil)
	if err != nil {
		return err
	}
	drainAndClose(resp.Body)

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusMethodNotAllowed, resp.StatusCode == http.StatusConflict:
		// Another client created it between our probe and the MKCOL.
		c.logger.Debug("Collection already present after MKCOL race",
			slog.String("url", collectionURL), slog.Int("status", resp.StatusCode))
		return nil
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
		return statusError(resp.StatusCode, "create collection")
	default:
		return statusError(resp.StatusCode, "create collection")
	}
}

func (c *Client) do(ctx context.Context, cfg domain.SyncConfig, method, rawURL string, body []byte, headers map[string]string) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, rawURL, reader)
	if err != nil {
		return nil, fmt.Errorf("invalid remote URL %q: %v: %w", rawURL, err, apperrors.ErrTransport)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	// Credentials go out preemptively, but only to the configured host so
	// they cannot leak to a redirect target elsewhere.
	if host := hostOf(cfg.BaseURL); host != "" && req.URL.Host == host {
		req.SetBasicAuth(cfg.Username, cfg.Password)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %v: %w", method, rawURL, err, apperrors.ErrTransport)
	}
	return resp, nil
}

func documentURL(cfg domain.SyncConfig) string {
	return strings.TrimRight(cfg.BaseURL, "/") + cfg.NormalizedSubPath()
}

func hostOf(baseURL string) string {
	u, err := url.Parse(baseURL)
	if err != nil {
		return ""
	}
	return u.Host
}

func statusError(status int, op string) error {
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("remote rejected credentials during %s (HTTP %d): %w", op, status, apperrors.ErrAuthFailed)
	default:
		return fmt.Errorf("unexpected status during %s (HTTP %d): %w", op, status, apperrors.ErrTransport)
	}
}

func drainAndClose(body io.ReadCloser) {
	_, _ = io.Copy(io.Discard, body)
	_ = body.Close()
}
