package gopro

import (
	"bytes"
	"context"
	"fmt"

	"github.com/grafov/m3u8"
)

// PreviewStatus summarizes the camera's live HLS preview playlist.
type PreviewStatus struct {
	PlaylistURL    string
	Segments       int
	TargetDuration float64
}

// PreviewStatus fetches the live preview playlist and reports how many
// segments it advertises. A decodable playlist means the preview
// stream is up.
func (c *Camera) PreviewStatus(ctx context.Context) (*PreviewStatus, error) {
	u := c.PreviewPlaylistURL()

	body, err := c.transport.Get(ctx, u)
	if err != nil {
		return nil, err
	}

	playlist, listType, err := m3u8.DecodeFrom(bytes.NewReader(body), true)
	if err != nil {
		return nil, fmt.Errorf("decode preview playlist: %w", err)
	}
	if listType != m3u8.MEDIA {
		return nil, fmt.Errorf("unexpected playlist type for %s", u)
	}
	media := playlist.(*m3u8.MediaPlaylist)

	segments := 0
	for _, s := range media.Segments {
		if s != nil {
			segments++
		}
	}

	return &PreviewStatus{
		PlaylistURL:    u,
		Segments:       segments,
		TargetDuration: media.TargetDuration,
	}, nil
}
