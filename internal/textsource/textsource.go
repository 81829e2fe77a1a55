// Package textsource retrieves résumé documents from a URL or local path
// and renders them into per-page plain text. It is the only component in
// the system that performs I/O; the extraction core consumes its immutable
// RawDocument output and is tested against synthetic fixtures.
package textsource

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/jonathan/resume-parser/internal/types"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// DefaultUserAgent is the user agent string for HTTP requests.
const DefaultUserAgent = "Mozilla/5.0 (compatible; ResumeParser/1.0)"

// maxDownloadBytes caps the response body read so a misbehaving remote
// cannot exhaust memory.
const maxDownloadBytes = 32 << 20

// Source is the narrow boundary between the extraction core and the
// outside world. Retrieval and parse failures are reported inside the
// RawDocument, not as errors; the error return is reserved for internal
// faults such as context cancellation.
type Source interface {
	Load(ctx context.Context, fileURL string) (*types.RawDocument, error)
}

// Client is the production Source: it downloads http(s) URLs or reads
// local paths, requires PDF content, and extracts per-page text.
type Client struct {
	httpClient *http.Client
	userAgent  string
}

// NewClient creates a Client with the given fetch timeout; zero means
// DefaultTimeout.
func NewClient(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		userAgent:  DefaultUserAgent,
	}
}

// Load retrieves the document and renders it to page text. Page order is
// preserved; any fetch or parse failure is embedded in the returned
// RawDocument for the validator to classify.
func (c *Client) Load(ctx context.Context, fileURL string) (*types.RawDocument, error) {
	data, failure := c.retrieve(ctx, fileURL)
	if failure != nil {
		return &types.RawDocument{Failure: failure}, nil
	}
	return extractPages(data), nil
}

// retrieve fetches raw bytes from a URL or local path. Mirrors the fetch
// contract: non-200 responses and non-PDF content are fetch failures.
func (c *Client) retrieve(ctx context.Context, fileURL string) ([]byte, *types.SourceFailure) {
	if strings.HasPrefix(fileURL, "http://") || strings.HasPrefix(fileURL, "https://") {
		return c.download(ctx, fileURL)
	}
	return readLocal(fileURL)
}

func (c *Client) download(ctx context.Context, fileURL string) ([]byte, *types.SourceFailure) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fileURL, nil)
	if err != nil {
		return nil, fetchFailure(fmt.Sprintf("invalid URL %s: %v", fileURL, err))
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fetchFailure(fmt.Sprintf("failed to download file: %v", err))
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fetchFailure(fmt.Sprintf("failed to download file: status code %d", resp.StatusCode))
	}
	if !strings.Contains(resp.Header.Get("Content-Type"), "pdf") {
		return nil, fetchFailure("the file is not a PDF")
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxDownloadBytes))
	if err != nil {
		return nil, fetchFailure(fmt.Sprintf("failed to read response body: %v", err))
	}
	return data, nil
}

func readLocal(path string) ([]byte, *types.SourceFailure) {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return nil, fetchFailure(fmt.Sprintf("local file not found: %s", path))
	}
	if !strings.HasSuffix(strings.ToLower(path), ".pdf") {
		return nil, fetchFailure("the file is not a PDF")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fetchFailure(fmt.Sprintf("failed to read local file: %v", err))
	}
	return data, nil
}

func fetchFailure(detail string) *types.SourceFailure {
	return &types.SourceFailure{Reason: types.ReasonFetchFailure, Detail: detail}
}
