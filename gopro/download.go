package gopro

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/dustin/go-humanize"
	log "github.com/sirupsen/logrus"
)

// DownloadAll fetches every listed media file into dir, preserving the
// camera's DCIM directory layout. Returns the first error encountered,
// after all in-flight downloads have settled.
func (c *Camera) DownloadAll(ctx context.Context, dir string) error {
	paths, err := c.MediaPaths(ctx)
	if err != nil {
		return err
	}

	var (
		wg     sync.WaitGroup
		errors = make(chan error, len(paths))
		// The camera's embedded server only copes with a handful of
		// sockets at once.
		sem = make(chan struct{}, 3)
	)

	wg.Add(len(paths))
	for _, p := range paths {
		go func(p string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			if err := c.downloadFile(ctx, dir, p); err != nil {
				errors <- err
			}
		}(p)
	}

	go func() {
		wg.Wait()

		// Signify no errors and that all jobs finished
		select {
		case errors <- nil:
		default: // if the channel is full
		}
	}()

	return <-errors
}

// downloadFile streams one media file to disk under dir. The relative
// path carries a leading slash from the flattened listing.
func (c *Camera) downloadFile(ctx context.Context, dir, relativePath string) error {
	logger := c.Logger.WithFields(log.Fields{"file": relativePath})

	body, _, err := c.transport.Stream(ctx, c.MediaFileURL(relativePath))
	if err != nil {
		logger.WithError(err).Debug("Could not fetch media file")
		return err
	}
	defer body.Close()

	target := filepath.Join(dir, filepath.FromSlash(relativePath))
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}

	f, err := os.Create(target)
	if err != nil {
		return err
	}
	defer f.Close()

	n, err := io.Copy(f, body)
	if c.instr != nil {
		c.instr.BytesDownloaded(n)
	}
	if err != nil {
		logger.WithError(err).Debug("Download interrupted")
		return err
	}

	logger.Infof("Downloaded %s", humanize.Bytes(uint64(n)))
	return nil
}
