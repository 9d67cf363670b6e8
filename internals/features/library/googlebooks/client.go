// Package googlebooks searches the Google Books catalog and maps volumes to books.
package googlebooks

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	bookModel "github.com/guipadovan/library-manager/internals/features/library/books/model"
	"github.com/guipadovan/library-manager/internals/helpers/apperror"

	"github.com/bytedance/sonic"
)

const Source = "google books"

var defaultHTTPClient = &http.Client{
	Timeout: 10 * time.Second,
	Transport: &http.Transport{
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        20,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
	},
}

type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewClient builds a client for baseURL (e.g. https://www.googleapis.com/books/v1).
// A nil hc uses a shared client with timeouts.
func NewClient(baseURL, apiKey string, hc *http.Client) *Client {
	if hc == nil {
		hc = defaultHTTPClient
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    hc,
	}
}

// SearchByTitle returns the complete records among the volumes matching title.
// Transport failures, non-2xx answers and malformed bodies come back as *apperror.ExternalError.
func (c *Client) SearchByTitle(ctx context.Context, title string) ([]bookModel.BookModel, error) {
	q := url.Values{}
	q.Set("q", "intitle:"+title)
	if c.apiKey != "" {
		q.Set("key", c.apiKey)
	}
	endpoint := c.baseURL + "/volumes?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, apperror.External(Source, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, apperror.External(Source, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 8<<20))
	if err != nil {
		return nil, apperror.External(Source, err)
	}
	if resp.StatusCode >= 300 {
		return nil, apperror.External(Source, fmt.Errorf("unexpected status %s", resp.Status))
	}

	var out volumesResponse
	if err := sonic.Unmarshal(body, &out); err != nil {
		return nil, apperror.External(Source, fmt.Errorf("decode volumes: %w", err))
	}
	return mapVolumes(out.Items), nil
}
