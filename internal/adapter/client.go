package adapter

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"gns3-inventory/internal/domain"
)

// HTTP client configuration
const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "gns3-inventory/1.0"
	maxErrorBody     = 512
)

// ClientConfig holds what the client needs to reach one controller
type ClientConfig struct {
	// BaseURL is the controller root, e.g. http://gns3.example.com:3080
	BaseURL string
	// ValidateCerts disables TLS verification when false
	ValidateCerts bool
	// Timeout bounds each request, including reading the body
	Timeout time.Duration
}

// ClientOption configures a GNS3Client
type ClientOption func(*GNS3Client)

// WithHTTPClient replaces the HTTP client built from ClientConfig
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *GNS3Client) {
		c.http = hc
	}
}

// WithLogger sets the logger used for request tracing
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *GNS3Client) {
		c.logger = logger
	}
}

// WithUserAgent overrides the User-Agent header
func WithUserAgent(ua string) ClientOption {
	return func(c *GNS3Client) {
		c.userAgent = ua
	}
}

// GNS3Client implements Controller against the REST API v2
type GNS3Client struct {
	baseURL   string
	timeout   time.Duration
	userAgent string
	http      *http.Client
	logger    *slog.Logger
}

// NewGNS3Client creates a client for the controller described by cfg
func NewGNS3Client(cfg ClientConfig, opts ...ClientOption) *GNS3Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	c := &GNS3Client{
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		timeout:   timeout,
		userAgent: defaultUserAgent,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.http == nil {
		c.http = newHTTPClient(cfg.ValidateCerts, timeout)
	}
	return c
}

// newHTTPClient creates an HTTP client honouring validate_certs
func newHTTPClient(validateCerts bool, timeout time.Duration) *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.TLSClientConfig = &tls.Config{
		InsecureSkipVerify: !validateCerts,
	}

	return &http.Client{
		Transport: transport,
		Timeout:   timeout,
	}
}

// ListProjects implements Controller
func (c *GNS3Client) ListProjects(ctx context.Context) ([]domain.Project, error) {
	entries, err := c.getList(ctx, "/v2/projects")
	if err != nil {
		return nil, err
	}

	projects := make([]domain.Project, 0, len(entries))
	for i, entry := range entries {
		p, err := decodeProject(entry)
		if err != nil {
			return nil, fmt.Errorf("%w: projects[%d]: %v", ErrInvalidResponse, i, err)
		}
		projects = append(projects, p)
	}

	c.logger.Debug("listed projects", "count", len(projects))
	return projects, nil
}

// ListNodes implements Controller. Every entry is returned, including nodes
// without a console address; ListConsoleNodes filters those out.
func (c *GNS3Client) ListNodes(ctx context.Context, projectID string) ([]domain.Node, error) {
	entries, err := c.getList(ctx, "/v2/projects/"+url.PathEscape(projectID)+"/nodes")
	if err != nil {
		return nil, err
	}

	nodes := make([]domain.Node, 0, len(entries))
	for i, entry := range entries {
		n, err := decodeNode(entry)
		if err != nil {
			return nil, fmt.Errorf("%w: nodes[%d]: %v", ErrInvalidResponse, i, err)
		}
		nodes = append(nodes, n)
	}

	c.logger.Debug("listed nodes", "project_id", projectID, "count", len(nodes))
	return nodes, nil
}

// getList performs a GET and decodes a top-level JSON array of objects
func (c *GNS3Client) getList(ctx context.Context, path string) ([]map[string]any, error) {
	body, err := c.get(ctx, path)
	if err != nil {
		return nil, err
	}

	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()

	var raw []any
	if err := decoder.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %s: expected a JSON array: %v", ErrInvalidResponse, path, err)
	}

	entries := make([]map[string]any, 0, len(raw))
	for i, item := range raw {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: %s: entry %d is %T, not an object", ErrInvalidResponse, path, i, item)
		}
		entries = append(entries, obj)
	}
	return entries, nil
}

// get performs a GET request with timeout and returns the body
func (c *GNS3Client) get(ctx context.Context, path string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	urlStr := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: create request for %s: %v", ErrControllerUnreachable, urlStr, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: GET %s: %v", ErrControllerUnreachable, urlStr, err)
	}
	defer resp.Body.Close()

	c.logger.Debug("controller request", "url", urlStr, "status", resp.StatusCode, "duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, fmt.Errorf("%w: GET %s: status %s: %s",
			ErrControllerUnreachable, urlStr, resp.Status, strings.TrimSpace(string(snippet)))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body from %s: %v", ErrControllerUnreachable, urlStr, err)
	}

	// Reverse proxies in front of the controller answer with HTML pages
	trimmed := bytes.TrimSpace(body)
	if bytes.HasPrefix(trimmed, []byte("<")) {
		return nil, fmt.Errorf("%w: received HTML instead of JSON from %s", ErrInvalidResponse, urlStr)
	}

	return body, nil
}
