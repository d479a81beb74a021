package gopro

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"runtime"
	"time"

	"github.com/frebib/gopro-ctl/version"
)

// Transport issues HTTP GETs against the camera. It exists as an
// interface so tests can substitute a fake device.
type Transport interface {
	// Get fetches url and returns the whole response body.
	Get(ctx context.Context, url string) ([]byte, error)
	// Stream fetches url and returns the response body as a stream
	// along with the reported content length (-1 when unknown).
	Stream(ctx context.Context, url string) (io.ReadCloser, int64, error)
}

var DefaultHeaders = map[string]string{
	"User-Agent": fmt.Sprintf("gopro-ctl/%s (%s)", version.Version, runtime.GOOS),
	"Accept":     "*/*",
}

type httpTransport struct {
	client  *http.Client
	headers map[string]string
}

// NewHTTPTransport returns a Transport backed by net/http with the
// given per-request timeout.
func NewHTTPTransport(timeout time.Duration) Transport {
	return &httpTransport{
		client:  &http.Client{Timeout: timeout},
		headers: DefaultHeaders,
	}
}

func (t *httpTransport) Get(ctx context.Context, url string) ([]byte, error) {
	body, _, err := t.send(ctx, url)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	b, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrTransport, url, err)
	}
	return b, nil
}

func (t *httpTransport) Stream(ctx context.Context, url string) (io.ReadCloser, int64, error) {
	return t.send(ctx, url)
}

func (t *httpTransport) send(ctx context.Context, url string) (io.ReadCloser, int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, -1, fmt.Errorf("%w: %v", ErrTransport, err)
	}

	for k, v := range t.headers {
		req.Header.Set(k, v)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, -1, fmt.Errorf("%w: %v", ErrTransport, err)
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, -1, fmt.Errorf("%w: http status %d for url %s", ErrTransport, resp.StatusCode, url)
	}
	return resp.Body, resp.ContentLength, nil
}
