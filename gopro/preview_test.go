package gopro

import (
	"context"
	"errors"
	"testing"
)

const previewPlaylist = `#EXTM3U
#EXT-X-VERSION:3
#EXT-X-TARGETDURATION:2
#EXT-X-MEDIA-SEQUENCE:0
#EXTINF:2.000,
amba0.ts
#EXTINF:2.000,
amba1.ts
`

func TestPreviewStatus(t *testing.T) {
	ft := newFakeTransport()
	ft.responses["http://10.5.5.9:8080/live/amba.m3u8"] = []byte(previewPlaylist)
	cam := newTestCamera(t, ft, false)

	status, err := cam.PreviewStatus(context.Background())
	if err != nil {
		t.Fatalf("PreviewStatus: %v", err)
	}
	if status.Segments != 2 {
		t.Fatalf("expected 2 segments, got %d", status.Segments)
	}
	if status.TargetDuration != 2 {
		t.Fatalf("expected target duration 2, got %v", status.TargetDuration)
	}
	if status.PlaylistURL != "http://10.5.5.9:8080/live/amba.m3u8" {
		t.Fatalf("unexpected playlist URL %q", status.PlaylistURL)
	}
}

func TestPreviewStatusStreamDown(t *testing.T) {
	ft := newFakeTransport()
	cam := newTestCamera(t, ft, false)

	_, err := cam.PreviewStatus(context.Background())
	if !errors.Is(err, ErrTransport) {
		t.Fatalf("expected ErrTransport, got %v", err)
	}
}
