package gopro

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/frebib/gopro-ctl/config"
)

// Camera is one control session against a HERO3-era camera. It holds
// the device base address, the addressing mode and the lazily fetched
// authentication token. The token is written at most once per session.
type Camera struct {
	Logger *log.Entry

	baseURL   string
	cors      bool
	token     string
	transport Transport
	instr     Instrumentation
}

// Instrumentation receives client-side events. Implementations export
// them as metrics; a nil Instrumentation disables reporting.
type Instrumentation interface {
	CommandIssued(group, code string, err error)
	TokenFetched(err error)
	MediaListed(err error)
	BytesDownloaded(n int64)
}

const (
	// The camera serves media and the live preview on a fixed port. In
	// direct mode the port is addressed as usual; behind a CORS proxy it
	// becomes the first path segment instead.
	streamingPort = "8080"

	authURI      = "%s/bacpac/sd"
	mediaListURI = "%s/gp/gpMediaList"
	mediaFileURI = "%s/videos/DCIM%s"
	previewURI   = "%s/live/amba.m3u8"
)

func NewCamera(c config.CameraConfig, l *log.Entry) (*Camera, error) {
	base := strings.TrimRight(c.Address, "/")
	if err := validateAddress(base); err != nil {
		return nil, err
	}

	return &Camera{
		Logger:    l,
		baseURL:   base,
		cors:      c.CORS,
		transport: NewHTTPTransport(time.Duration(c.Timeout) * time.Second),
	}, nil
}

// SetTransport replaces the HTTP transport. Used by tests and by
// callers that need custom dialing.
func (c *Camera) SetTransport(t Transport) { c.transport = t }

// SetInstrumentation attaches a metrics sink to the session.
func (c *Camera) SetInstrumentation(i Instrumentation) { c.instr = i }

func validateAddress(base string) error {
	u, err := url.ParseRequestURI(base)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: %q", ErrInvalidAddress, base)
	}
	return nil
}

// streamingBase returns the base address with the streaming port
// embedded according to the addressing mode.
func (c *Camera) streamingBase() string {
	if c.cors {
		return c.baseURL + "/" + streamingPort
	}
	return c.baseURL + ":" + streamingPort
}

// AuthURL is the endpoint the session token is fetched from.
func (c *Camera) AuthURL() string {
	return fmt.Sprintf(authURI, c.baseURL)
}

// MediaListURL is the endpoint serving the nested media listing.
func (c *Camera) MediaListURL() string {
	return fmt.Sprintf(mediaListURI, c.streamingBase())
}

// MediaFileURL maps a flattened listing path (leading slash included)
// to the absolute URL the file is served from.
func (c *Camera) MediaFileURL(relativePath string) string {
	return fmt.Sprintf(mediaFileURI, c.streamingBase(), relativePath)
}

// PreviewPlaylistURL is the camera's live HLS preview playlist.
func (c *Camera) PreviewPlaylistURL() string {
	return fmt.Sprintf(previewURI, c.streamingBase())
}
