package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"github.com/frebib/gopro-ctl/collector"
	"github.com/frebib/gopro-ctl/config"
	"github.com/frebib/gopro-ctl/gopro"
	"github.com/frebib/gopro-ctl/version"
)

func main() {
	app := cli.NewApp()
	app.Name = "gopro-ctl"
	app.Usage = "control a GoPro HERO3 camera over Wi-Fi"
	app.Version = version.Version
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config, c",
			Usage: "path to YAML config file",
		},
		cli.StringFlag{
			Name:  "address, a",
			Usage: "camera base address",
		},
		cli.BoolFlag{
			Name:  "cors",
			Usage: "address the streaming port as a path segment",
		},
		cli.StringFlag{
			Name:  "log-level, l",
			Usage: "log level (trace, debug, info, warn, error)",
		},
		cli.StringFlag{
			Name:  "listen",
			Usage: "serve prometheus metrics on this address during long-running commands",
		},
	}
	app.Commands = []cli.Command{
		powerCommand,
		recordCommand,
		modeCommand,
		fovCommand,
		resolutionCommand,
		intervalCommand,
		previewCommand,
		locateCommand,
		mediaCommand,
		deleteCommand,
		timelapseCommand,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func setup(c *cli.Context) (*gopro.Camera, *config.Config, error) {
	conf, err := config.Load(c)
	if err != nil {
		return nil, nil, err
	}

	level, err := log.ParseLevel(conf.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("unknown log level %q", conf.LogLevel)
	}
	log.SetLevel(level)

	logger := log.WithFields(log.Fields{"camera": conf.Camera.Address})
	cam, err := gopro.NewCamera(conf.Camera, logger)
	if err != nil {
		return nil, nil, err
	}
	return cam, conf, nil
}

// simple wraps a one-shot device command into a CLI action.
func simple(req func() gopro.CommandRequest) func(*cli.Context) error {
	return func(c *cli.Context) error {
		cam, _, err := setup(c)
		if err != nil {
			return err
		}
		return cam.Execute(context.Background(), req())
	}
}

// coded wraps a device command parameterized by a named option code.
func coded(req func(string) gopro.CommandRequest, options map[string]string) func(*cli.Context) error {
	return func(c *cli.Context) error {
		option, ok := options[c.Args().First()]
		if !ok {
			return fmt.Errorf("unknown argument %q", c.Args().First())
		}

		cam, _, err := setup(c)
		if err != nil {
			return err
		}
		return cam.Execute(context.Background(), req(option))
	}
}

var powerCommand = cli.Command{
	Name:  "power",
	Usage: "power the camera on or off",
	Subcommands: []cli.Command{
		{Name: "on", Action: simple(gopro.PowerOn)},
		{Name: "off", Action: simple(gopro.PowerOff)},
	},
}

var recordCommand = cli.Command{
	Name:  "record",
	Usage: "trigger or release the shutter",
	Subcommands: []cli.Command{
		{Name: "start", Action: simple(gopro.ShutterStart)},
		{Name: "stop", Action: simple(gopro.ShutterStop)},
	},
}

var modeCommand = cli.Command{
	Name:      "mode",
	Usage:     "switch capture mode",
	ArgsUsage: "video|photo|burst|timelapse",
	Action:    coded(gopro.SetMode, gopro.Modes),
}

var fovCommand = cli.Command{
	Name:      "fov",
	Usage:     "set the field of view",
	ArgsUsage: "wide|medium|narrow",
	Action:    coded(gopro.SetFieldOfView, gopro.FieldsOfView),
}

var resolutionCommand = cli.Command{
	Name:      "resolution",
	Usage:     "set the video resolution",
	ArgsUsage: "wvga|720p|960p|1080p",
	Action:    coded(gopro.SetVideoResolution, gopro.VideoResolutions),
}

var intervalCommand = cli.Command{
	Name:      "interval",
	Usage:     "set the on-camera timelapse interval in seconds",
	ArgsUsage: "0.5|1|5|10|30|60",
	Action:    coded(gopro.SetTimelapseInterval, gopro.TimelapseIntervals),
}

var previewCommand = cli.Command{
	Name:  "preview",
	Usage: "control and inspect the live preview stream",
	Subcommands: []cli.Command{
		{Name: "start", Action: simple(gopro.PreviewStart)},
		{Name: "stop", Action: simple(gopro.PreviewStop)},
		{
			Name:  "status",
			Usage: "probe the live HLS playlist",
			Action: func(c *cli.Context) error {
				cam, _, err := setup(c)
				if err != nil {
					return err
				}

				status, err := cam.PreviewStatus(context.Background())
				if err != nil {
					return err
				}
				fmt.Printf("%s: %d segments, target duration %.1fs\n",
					status.PlaylistURL, status.Segments, status.TargetDuration)
				return nil
			},
		},
	},
}

var locateCommand = cli.Command{
	Name:  "locate",
	Usage: "make the camera beep to locate it",
	Subcommands: []cli.Command{
		{Name: "on", Action: simple(gopro.LocateOn)},
		{Name: "off", Action: simple(gopro.LocateOff)},
	},
}

var deleteCommand = cli.Command{
	Name:  "delete",
	Usage: "delete media on the camera",
	Subcommands: []cli.Command{
		{Name: "last", Action: simple(gopro.DeleteLast)},
		{Name: "all", Action: simple(gopro.DeleteAll)},
	},
}

var mediaCommand = cli.Command{
	Name:  "media",
	Usage: "list and download stored media",
	Subcommands: []cli.Command{
		{
			Name:  "list",
			Usage: "list media files on the camera",
			Action: func(c *cli.Context) error {
				cam, _, err := setup(c)
				if err != nil {
					return err
				}

				paths, err := cam.MediaPaths(context.Background())
				if err != nil {
					return err
				}

				t := table.NewWriter()
				t.SetOutputMirror(os.Stdout)
				t.AppendHeader(table.Row{"#", "Path"})
				for i, p := range paths {
					t.AppendRow(table.Row{i + 1, p})
				}
				t.Render()
				return nil
			},
		},
		{
			Name:  "urls",
			Usage: "print the absolute URL of every media file",
			Action: func(c *cli.Context) error {
				cam, _, err := setup(c)
				if err != nil {
					return err
				}

				urls, err := cam.MediaURLs(context.Background())
				if err != nil {
					return err
				}
				for _, u := range urls {
					fmt.Println(u)
				}
				return nil
			},
		},
		{
			Name:  "download",
			Usage: "download all media files",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "dir, d",
					Usage: "target directory",
					Value: ".",
				},
			},
			Action: func(c *cli.Context) error {
				cam, conf, err := setup(c)
				if err != nil {
					return err
				}
				serveMetrics(cam, conf)

				return cam.DownloadAll(context.Background(), c.String("dir"))
			},
		},
	},
}

var timelapseCommand = cli.Command{
	Name:  "timelapse",
	Usage: "trigger the shutter repeatedly until interrupted",
	Flags: []cli.Flag{
		cli.DurationFlag{
			Name:  "interval, i",
			Usage: "time between shutter triggers",
			Value: 30 * time.Second,
		},
	},
	Action: func(c *cli.Context) error {
		cam, conf, err := setup(c)
		if err != nil {
			return err
		}
		serveMetrics(cam, conf)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		ticker := time.NewTicker(c.Duration("interval"))
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
				if err := cam.Execute(ctx, gopro.ShutterStart()); err != nil {
					cam.Logger.WithError(err).Error("Shutter trigger failed")
				}
			}
		}
	},
}

// serveMetrics exposes client-side counters over HTTP for the duration
// of a long-running command, when a listen address is configured.
func serveMetrics(cam *gopro.Camera, conf *config.Config) {
	addr := conf.Metrics.ListenAddress
	if addr == "" {
		return
	}

	col := collector.NewCameraCollector(cam.Logger)
	cam.SetInstrumentation(col)

	registry := prometheus.NewRegistry()
	registry.MustRegister(col)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	go func() {
		if err := http.ListenAndServe(addr, mux); err != nil {
			cam.Logger.WithError(err).Error("Metrics listener failed")
		}
	}()
}
