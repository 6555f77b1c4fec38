// Package fetch locates and downloads the latest Windows CSP DDF bundle
// from the Microsoft Learn download page.
package fetch

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/net/html"
)

// LearnURL is the Microsoft Learn page listing CSP DDF bundle downloads.
const LearnURL = "https://learn.microsoft.com/en-us/windows/client-management/mdm/configuration-service-provider-ddf"

const (
	userAgent      = "mdmexec/1.0"
	defaultRetries = 3
)

// ErrNoBundleLink is returned by BundleURL when the page carries no
// Microsoft download ZIP link.
var ErrNoBundleLink = errors.New("no DDF bundle link found on page")

// Client downloads DDF bundles. The zero value uses http.DefaultClient and
// a single attempt; NewClient applies the usual timeout and retry count.
type Client struct {
	HTTP    *http.Client
	Retries int
	// PageURL overrides LearnURL, used by tests
	PageURL string
}

// NewClient returns a Client with a 60 second request timeout and three
// download attempts.
func NewClient() *Client {
	return &Client{
		HTTP:    &http.Client{Timeout: 60 * time.Second},
		Retries: defaultRetries,
	}
}

// BundleURL scrapes the Learn page and returns the first Microsoft download
// ZIP link found. Microsoft keeps the latest bundle link near the top of
// the page.
func (c *Client) BundleURL(ctx context.Context) (string, error) {
	page := c.PageURL
	if page == "" {
		page = LearnURL
	}
	body, err := c.Get(ctx, page)
	if err != nil {
		return "", err
	}
	u := findZipLink(bytes.NewReader(body))
	if u == "" {
		return "", ErrNoBundleLink
	}
	return u, nil
}

// Get downloads url, retrying failed attempts up to the configured count.
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	retries := c.Retries
	if retries < 1 {
		retries = 1
	}
	var lastErr error
	for attempt := 1; attempt <= retries; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		body, err := c.get(ctx, url)
		if err == nil {
			return body, nil
		}
		lastErr = err
	}
	return nil, errors.Wrapf(lastErr, "downloading %s", url)
}

func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	httpc := c.HTTP
	if httpc == nil {
		httpc = http.DefaultClient
	}
	resp, err := httpc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("unexpected status %s", resp.Status)
	}
	return io.ReadAll(resp.Body)
}

// findZipLink scans anchor hrefs in document order for a Microsoft download
// ZIP and returns the first match, or "".
func findZipLink(r io.Reader) string {
	doc, err := html.Parse(r)
	if err != nil {
		return ""
	}
	var scan func(*html.Node) string
	scan = func(n *html.Node) string {
		if n.Type == html.ElementNode && n.Data == "a" {
			for _, attr := range n.Attr {
				if attr.Key != "href" {
					continue
				}
				href := attr.Val
				if strings.HasPrefix(href, "https://download.microsoft.com/") &&
					strings.HasSuffix(strings.ToLower(href), ".zip") {
					return href
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if found := scan(c); found != "" {
				return found
			}
		}
		return ""
	}
	return scan(doc)
}
