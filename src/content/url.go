package content

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/illikainen/go-utils/src/errorx"
	"github.com/pkg/errors"
)

type URLFetcher struct {
	client *http.Client
}

func NewURLFetcher(timeout time.Duration) *URLFetcher {
	return &URLFetcher{
		client: &http.Client{Timeout: timeout},
	}
}

func (f *URLFetcher) Fetch(ctx context.Context, value string) (data []byte, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, value, nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer errorx.Defer(resp.Body.Close, &err)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.Errorf("%s: %s", value, resp.Status)
	}

	data, err = io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return data, nil
}
