package collector

import (
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
)

// CameraCollector exports client-side counters about traffic to the
// camera. It never polls the device itself; every observation comes
// from a command the client issued anyway.
type CameraCollector struct {
	Logger *log.Entry

	commandsTotal   *prometheus.CounterVec
	tokenFetches    *prometheus.CounterVec
	mediaListings   *prometheus.CounterVec
	downloadedBytes prometheus.Counter
}

func NewCameraCollector(l *log.Entry) *CameraCollector {
	return &CameraCollector{
		Logger: l,

		commandsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "gopro",
				Subsystem: "commands",
				Name:      "total",
				Help:      "Device commands issued, by group, code and outcome",
			},
			[]string{"group", "code", "outcome"},
		),
		tokenFetches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "gopro",
				Subsystem: "auth",
				Name:      "token_fetches_total",
				Help:      "Session token fetches from the bacpac",
			},
			[]string{"outcome"},
		),
		mediaListings: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "gopro",
				Subsystem: "media",
				Name:      "listings_total",
				Help:      "Media listing requests",
			},
			[]string{"outcome"},
		),
		downloadedBytes: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "gopro",
				Subsystem: "media",
				Name:      "downloaded_bytes_total",
				Help:      "Bytes of media downloaded from the camera",
			},
		),
	}
}

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

// CommandIssued implements gopro.Instrumentation.
func (c *CameraCollector) CommandIssued(group, code string, err error) {
	c.commandsTotal.WithLabelValues(group, code, outcome(err)).Inc()
}

// TokenFetched implements gopro.Instrumentation.
func (c *CameraCollector) TokenFetched(err error) {
	c.tokenFetches.WithLabelValues(outcome(err)).Inc()
}

// MediaListed implements gopro.Instrumentation.
func (c *CameraCollector) MediaListed(err error) {
	c.mediaListings.WithLabelValues(outcome(err)).Inc()
}

// BytesDownloaded implements gopro.Instrumentation.
func (c *CameraCollector) BytesDownloaded(n int64) {
	c.downloadedBytes.Add(float64(n))
}

func (c *CameraCollector) Describe(ch chan<- *prometheus.Desc) {
	c.commandsTotal.Describe(ch)
	c.tokenFetches.Describe(ch)
	c.mediaListings.Describe(ch)
	c.downloadedBytes.Describe(ch)
}

func (c *CameraCollector) Collect(ch chan<- prometheus.Metric) {
	c.commandsTotal.Collect(ch)
	c.tokenFetches.Collect(ch)
	c.mediaListings.Collect(ch)
	c.downloadedBytes.Collect(ch)
}
