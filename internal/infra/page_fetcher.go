package infra

import (
	"context"
	"net/url"
)

// PageFetcherは1ページ分のHTMLを取得するクライアントです。
type PageFetcher interface {
	// Fetchは rawURL に query を付けて取得したHTMLを返します。
	Fetch(ctx context.Context, rawURL string, query url.Values) (string, error)
	Close() error
}

func withQuery(rawURL string, query url.Values) (string, error) {
	if len(query) == 0 {
		return rawURL, nil
	}
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}
	q := parsed.Query()
	for key, values := range query {
		for _, v := range values {
			q.Add(key, v)
		}
	}
	parsed.RawQuery = q.Encode()
	return parsed.String(), nil
}
