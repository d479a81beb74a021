package gopro

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"
	"testing"

	log "github.com/sirupsen/logrus"

	"github.com/frebib/gopro-ctl/config"
)

// fakeTransport serves canned responses per URL and records every
// request it sees. Safe for concurrent use; downloads fan out.
type fakeTransport struct {
	mu        sync.Mutex
	responses map[string][]byte
	errs      map[string]error
	calls     []string
}

func newFakeTransport() *fakeTransport {
	return &fakeTransport{
		responses: map[string][]byte{},
		errs:      map[string]error{},
	}
}

func (f *fakeTransport) Get(ctx context.Context, url string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls = append(f.calls, url)
	if err, ok := f.errs[url]; ok {
		return nil, err
	}
	body, ok := f.responses[url]
	if !ok {
		return nil, fmt.Errorf("%w: no response for %s", ErrTransport, url)
	}
	return body, nil
}

func (f *fakeTransport) Stream(ctx context.Context, url string) (io.ReadCloser, int64, error) {
	body, err := f.Get(ctx, url)
	if err != nil {
		return nil, -1, err
	}
	return io.NopCloser(bytes.NewReader(body)), int64(len(body)), nil
}

func (f *fakeTransport) count(url string) int {
	f.mu.Lock()
	defer f.mu.Unlock()

	n := 0
	for _, c := range f.calls {
		if c == url {
			n++
		}
	}
	return n
}

func newTestCamera(t *testing.T, ft *fakeTransport, cors bool) *Camera {
	t.Helper()

	cam, err := NewCamera(config.CameraConfig{
		Address: "http://10.5.5.9",
		CORS:    cors,
		Timeout: 1,
	}, log.WithField("test", t.Name()))
	if err != nil {
		t.Fatalf("NewCamera: %v", err)
	}
	cam.SetTransport(ft)
	return cam
}
