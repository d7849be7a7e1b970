package downloader

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/apodgrab/apodgrab/internal/apod"
	"github.com/apodgrab/apodgrab/internal/archive"
	apodhttp "github.com/apodgrab/apodgrab/internal/http"
	"github.com/apodgrab/apodgrab/internal/progress"
	"github.com/apodgrab/apodgrab/internal/retry"
	"github.com/apodgrab/apodgrab/pkg/daterange"
)

// Options configures the downloader.
type Options struct {
	// Workers is the number of parallel record workers.
	// Default: 5
	Workers int

	// MaxSpanDays is the widest date span fetched in one API call.
	// Default: 100
	MaxSpanDays int

	// Retry applies to each metadata fetch and each asset download.
	Retry retry.Policy

	// Progress is an optional progress reporter.
	Progress *progress.Reporter
}

// Outcome is the terminal result of processing one record. Immutable once
// created.
type Outcome struct {
	Date    string
	Title   string
	Success bool

	// Path is the archive key of the stored asset. Set only on success.
	Path string

	// Reason explains a skip or failure. Set only when Success is false.
	Reason string
}

// Downloader runs batch and single-record downloads. It owns the transport
// handle shared by metadata and asset requests.
type Downloader struct {
	transport *apodhttp.Client
	api       *apod.Client
	store     *archive.Store
	opts      Options
}

// New creates a downloader from its collaborators.
func New(transport *apodhttp.Client, api *apod.Client, store *archive.Store, opts Options) *Downloader {
	if opts.Workers <= 0 {
		opts.Workers = 5
	}
	if opts.MaxSpanDays <= 0 {
		opts.MaxSpanDays = 100
	}
	if opts.Retry.Attempts < 1 {
		opts.Retry = retry.DefaultPolicy()
	}

	return &Downloader{
		transport: transport,
		api:       api,
		store:     store,
		opts:      opts,
	}
}

// ProcessRange downloads every record in the inclusive range. Oversized
// ranges are chunked; chunks run sequentially and each chunk's records run
// concurrently. A chunk whose metadata fetch exhausts its retries
// contributes no outcomes and does not stop the run.
func (d *Downloader) ProcessRange(ctx context.Context, r daterange.Range, saveMetadata bool) []Outcome {
	var outcomes []Outcome

	for _, chunk := range r.Chunk(d.opts.MaxSpanDays) {
		slog.Info("fetching metadata", "start", chunk.Start, "end", chunk.End)

		recs, err := retry.Do(ctx, d.opts.Retry, func(ctx context.Context) ([]apod.Record, error) {
			return d.api.FetchRange(ctx, chunk)
		})
		if err != nil {
			slog.Error("metadata fetch failed, skipping chunk",
				"start", chunk.Start,
				"end", chunk.End,
				"error", err,
			)
			continue
		}

		slog.Info("processing records", "count", len(recs), "workers", d.opts.Workers)
		outcomes = append(outcomes, d.processChunk(ctx, recs, saveMetadata)...)
	}

	return outcomes
}

// ProcessOne downloads the record for a single date without chunking or
// pooling.
func (d *Downloader) ProcessOne(ctx context.Context, date daterange.Date, saveMetadata bool) Outcome {
	rec, err := retry.Do(ctx, d.opts.Retry, func(ctx context.Context) (apod.Record, error) {
		return d.api.Fetch(ctx, date)
	})
	if err != nil {
		return Outcome{
			Date:   date.String(),
			Reason: fmt.Sprintf("metadata fetch failed: %v", err),
		}
	}

	return d.safeProcess(ctx, rec, saveMetadata)
}

// processChunk fans records out across the worker pool and collects one
// outcome per record. Outcomes arrive in completion order.
func (d *Downloader) processChunk(ctx context.Context, recs []apod.Record, saveMetadata bool) []Outcome {
	jobs := make(chan apod.Record)
	results := make(chan Outcome)

	var wg sync.WaitGroup
	for i := 0; i < d.opts.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for rec := range jobs {
				results <- d.safeProcess(ctx, rec, saveMetadata)
			}
		}()
	}

	go func() {
		defer close(jobs)
		for _, rec := range recs {
			jobs <- rec
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	outcomes := make([]Outcome, 0, len(recs))
	for outcome := range results {
		outcomes = append(outcomes, outcome)
	}
	return outcomes
}

// safeProcess runs processRecord and converts a panic into a failure
// outcome so one record can never take down the batch.
func (d *Downloader) safeProcess(ctx context.Context, rec apod.Record, saveMetadata bool) (outcome Outcome) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("record processing panicked", "date", rec.Date, "panic", r)
			outcome = Outcome{
				Date:   rec.Date,
				Title:  rec.Title,
				Reason: fmt.Sprintf("processing error: %v", r),
			}
		}
	}()
	return d.processRecord(ctx, rec, saveMetadata)
}

func (d *Downloader) processRecord(ctx context.Context, rec apod.Record, saveMetadata bool) Outcome {
	outcome := Outcome{Date: rec.Date, Title: rec.Title}

	if rec.MediaType != apod.MediaTypeImage {
		outcome.Reason = fmt.Sprintf("unsupported media type: %s", rec.MediaType)
		slog.Info("skipping record", "date", rec.Date, "reason", outcome.Reason)
		return outcome
	}

	assetURL := rec.AssetURL()
	if assetURL == "" {
		outcome.Reason = "no asset URL"
		slog.Info("skipping record", "date", rec.Date, "reason", outcome.Reason)
		return outcome
	}

	key := archive.AssetName(rec)

	_, err := retry.Do(ctx, d.opts.Retry, func(ctx context.Context) (int64, error) {
		return d.download(ctx, assetURL, key)
	})
	if err != nil {
		slog.Error("download failed", "date", rec.Date, "url", assetURL, "error", err)
		outcome.Reason = "download failed"
		return outcome
	}

	if saveMetadata {
		if err := d.store.WriteMetadata(ctx, key, rec.Raw); err != nil {
			slog.Error("metadata write failed", "date", rec.Date, "error", err)
			outcome.Reason = fmt.Sprintf("save metadata: %v", err)
			return outcome
		}
	}

	outcome.Success = true
	outcome.Path = key
	return outcome
}

// download streams one asset into the archive. An already-archived key is
// success with no network call.
func (d *Downloader) download(ctx context.Context, assetURL, key string) (int64, error) {
	exists, err := d.store.Exists(ctx, key)
	if err != nil {
		return 0, fmt.Errorf("check %s: %w", key, err)
	}
	if exists {
		slog.Debug("already archived", "key", key)
		return 0, nil
	}

	body, size, err := d.transport.Get(ctx, assetURL)
	if err != nil {
		return 0, err
	}
	defer body.Close()

	track := d.opts.Progress.Track(key, size)
	n, err := d.store.Write(ctx, key, body, track)
	track.Done(err == nil)
	if err != nil {
		return n, err
	}
	return n, nil
}
