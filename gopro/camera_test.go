package gopro

import (
	"testing"

	log "github.com/sirupsen/logrus"

	"github.com/frebib/gopro-ctl/config"
)

func TestAuthURL(t *testing.T) {
	cam := newTestCamera(t, newFakeTransport(), false)

	if got, want := cam.AuthURL(), "http://10.5.5.9/bacpac/sd"; got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestMediaListURLAddressingModes(t *testing.T) {
	tests := []struct {
		name string
		cors bool
		want string
	}{
		{"direct", false, "http://10.5.5.9:8080/gp/gpMediaList"},
		{"cors", true, "http://10.5.5.9/8080/gp/gpMediaList"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cam := newTestCamera(t, newFakeTransport(), tt.cors)
			if got := cam.MediaListURL(); got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestMediaFileURL(t *testing.T) {
	cam := newTestCamera(t, newFakeTransport(), false)

	got := cam.MediaFileURL("/100GOPRO/GOPR0001.MP4")
	if want := "http://10.5.5.9:8080/videos/DCIM/100GOPRO/GOPR0001.MP4"; got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestPreviewPlaylistURL(t *testing.T) {
	cam := newTestCamera(t, newFakeTransport(), true)

	if got, want := cam.PreviewPlaylistURL(), "http://10.5.5.9/8080/live/amba.m3u8"; got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestNewCameraTrimsTrailingSlash(t *testing.T) {
	cam, err := NewCamera(config.CameraConfig{
		Address: "http://10.5.5.9/",
		Timeout: 1,
	}, log.WithField("test", t.Name()))
	if err != nil {
		t.Fatalf("NewCamera: %v", err)
	}

	if got, want := cam.AuthURL(), "http://10.5.5.9/bacpac/sd"; got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}
