package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/apodgrab/apodgrab/internal/apod"
	"github.com/apodgrab/apodgrab/internal/archive"
	"github.com/apodgrab/apodgrab/internal/config"
	"github.com/apodgrab/apodgrab/internal/downloader"
	apodhttp "github.com/apodgrab/apodgrab/internal/http"
	"github.com/apodgrab/apodgrab/internal/progress"
	"github.com/apodgrab/apodgrab/internal/retry"
)

// commonFlags holds the flags shared by every download command.
type commonFlags struct {
	configPath    string
	apiKey        string
	endpoint      string
	output        string
	workers       int
	timeout       time.Duration
	retryAttempts int
	retryDelay    time.Duration
	noMetadata    bool
	showProgress  bool
}

func addCommonFlags(fs *flag.FlagSet) *commonFlags {
	f := &commonFlags{}
	fs.StringVar(&f.configPath, "config", "", "Path to YAML config file")
	fs.StringVar(&f.apiKey, "api-key", "", "NASA API key (default: DEMO_KEY)")
	fs.StringVar(&f.endpoint, "endpoint", "", "APOD API endpoint (for testing)")
	fs.StringVar(&f.output, "output", "", "Output directory or bucket URL (default: apod_images)")
	fs.IntVar(&f.workers, "workers", 0, "Number of concurrent downloads (default: 5)")
	fs.DurationVar(&f.timeout, "timeout", 0, "Per-request timeout (default: 30s)")
	fs.IntVar(&f.retryAttempts, "retry-attempts", 0, "Attempts per request (default: 3)")
	fs.DurationVar(&f.retryDelay, "retry-delay", 0, "Pause between retries (default: none)")
	fs.BoolVar(&f.noMetadata, "no-metadata", false, "Do not save metadata JSON files")
	fs.BoolVar(&f.showProgress, "progress", false, "Show transfer progress")
	return f
}

// loadConfig layers defaults, the optional config file, environment
// variables, and flag overrides.
func (f *commonFlags) loadConfig() (config.Config, error) {
	cfg := config.Default()

	if f.configPath != "" {
		fileCfg, err := config.LoadFromFile(f.configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = fileCfg
	}

	if err := cfg.LoadFromEnv(); err != nil {
		return config.Config{}, err
	}

	cfg = cfg.Merge(config.Config{
		APIKey:     f.apiKey,
		Endpoint:   f.endpoint,
		Output:     f.output,
		Workers:    f.workers,
		Timeout:    f.timeout,
		NoMetadata: f.noMetadata,
		Progress:   f.showProgress,
		Retry: config.RetryConfig{
			Attempts: f.retryAttempts,
			Delay:    f.retryDelay,
		},
	})

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// session bundles the collaborators one command run needs.
type session struct {
	downloader *downloader.Downloader
	store      *archive.Store
	reporter   *progress.Reporter
	cfg        config.Config
}

func newSession(ctx context.Context, cfg config.Config) (*session, error) {
	store, err := archive.Open(ctx, cfg.Output, archive.Options{
		BufferSize: int(cfg.BufferSize),
	})
	if err != nil {
		return nil, err
	}

	var reporter *progress.Reporter
	if cfg.Progress {
		reporter = progress.NewReporter(progress.Options{})
		reporter.Start()
	}

	transport := apodhttp.NewClient(apodhttp.Options{
		Timeout:   cfg.Timeout,
		UserAgent: "apodgrab",
	})
	api := apod.NewClient(transport, apod.Options{
		Endpoint: cfg.Endpoint,
		APIKey:   cfg.APIKey,
	})

	d := downloader.New(transport, api, store, downloader.Options{
		Workers:     cfg.Workers,
		MaxSpanDays: cfg.MaxSpanDays,
		Progress:    reporter,
		Retry: retry.Policy{
			Attempts: cfg.Retry.Attempts,
			Delay:    cfg.Retry.Delay,
		},
	})

	return &session{downloader: d, store: store, reporter: reporter, cfg: cfg}, nil
}

func (s *session) close() {
	if s.reporter != nil {
		s.reporter.Stop()
	}
	s.store.Close()
}

// signalContext returns a context cancelled by SIGINT/SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\n[apodgrab] Received interrupt, shutting down...")
		cancel()
	}()

	return ctx, cancel
}

// printReport prints the run summary and picks the exit code: success when
// at least one record succeeded (or there was nothing to do), download
// failure when every record failed.
func printReport(outcomes []downloader.Outcome) int {
	succeeded := 0
	for _, o := range outcomes {
		if o.Success {
			succeeded++
		}
	}

	fmt.Printf("Downloaded %d of %d images.\n", succeeded, len(outcomes))

	for _, o := range outcomes {
		if !o.Success {
			fmt.Printf("  %s  %s: %s\n", o.Date, o.Title, o.Reason)
		}
	}

	if len(outcomes) > 0 && succeeded == 0 {
		return ExitDownloadFailed
	}
	return ExitSuccess
}
