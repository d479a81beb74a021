package collector

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	log "github.com/sirupsen/logrus"
)

func TestCameraCollectorCounters(t *testing.T) {
	c := NewCameraCollector(log.WithField("test", t.Name()))

	c.CommandIssued("camera", "SH", nil)
	c.CommandIssued("camera", "SH", nil)
	c.CommandIssued("camera", "SH", errors.New("boom"))
	c.TokenFetched(nil)
	c.MediaListed(errors.New("boom"))
	c.BytesDownloaded(2048)

	if got := testutil.ToFloat64(c.commandsTotal.WithLabelValues("camera", "SH", "success")); got != 2 {
		t.Fatalf("expected 2 successful commands, got %v", got)
	}
	if got := testutil.ToFloat64(c.commandsTotal.WithLabelValues("camera", "SH", "error")); got != 1 {
		t.Fatalf("expected 1 failed command, got %v", got)
	}
	if got := testutil.ToFloat64(c.tokenFetches.WithLabelValues("success")); got != 1 {
		t.Fatalf("expected 1 token fetch, got %v", got)
	}
	if got := testutil.ToFloat64(c.mediaListings.WithLabelValues("error")); got != 1 {
		t.Fatalf("expected 1 failed listing, got %v", got)
	}
	if got := testutil.ToFloat64(c.downloadedBytes); got != 2048 {
		t.Fatalf("expected 2048 downloaded bytes, got %v", got)
	}
}

func TestCameraCollectorRegisters(t *testing.T) {
	registry := prometheus.NewRegistry()
	if err := registry.Register(NewCameraCollector(log.WithField("test", t.Name()))); err != nil {
		t.Fatalf("register: %v", err)
	}
}
