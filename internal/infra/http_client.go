package infra

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
)

type HTTPClientArgs struct {
	UserAgent string
	Headers   map[string]string
	Timeout   time.Duration
}

type httpClient struct {
	client *resty.Client
}

// NewHTTPClientはrestyを用いたPageFetcherを生成します。リトライは行いません。
func NewHTTPClient(args HTTPClientArgs) PageFetcher {
	client := resty.New().
		SetTimeout(args.Timeout).
		SetHeader("User-Agent", args.UserAgent).
		SetHeaders(args.Headers)

	return &httpClient{client: client}
}

func (c *httpClient) Fetch(ctx context.Context, rawURL string, query url.Values) (string, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParamsFromValues(query).
		Get(rawURL)
	if err != nil {
		return "", fmt.Errorf("GET %s に失敗しました: %w", rawURL, err)
	}

	if resp.IsError() {
		return "", fmt.Errorf("GET %s がステータス %d を返しました", resp.Request.URL, resp.StatusCode())
	}

	return resp.String(), nil
}

func (c *httpClient) Close() error {
	return nil
}
