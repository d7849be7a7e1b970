package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/apodgrab/apodgrab/internal/downloader"
	"github.com/apodgrab/apodgrab/pkg/daterange"
)

func runFetch(args []string) int {
	fs := flag.NewFlagSet("fetch", flag.ExitOnError)

	date := fs.String("date", "", "Download the image for one date (YYYY-MM-DD)")
	start := fs.String("start", "", "Start of a date range (YYYY-MM-DD)")
	end := fs.String("end", "", "End of a date range (YYYY-MM-DD)")
	lastDays := fs.Int("last-days", 0, "Download images from the last N days")
	common := addCommonFlags(fs)

	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, `Usage: apodgrab fetch [options]

Download APOD images for a single date (-date), an inclusive date range
(-start/-end), or the last N days (-last-days). Ranges wider than the API's
span limit are fetched in consecutive chunks. Already-archived images are
skipped.

Options:`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return ExitInvalidArgs
	}

	modes := 0
	if *date != "" {
		modes++
	}
	if *start != "" || *end != "" {
		modes++
	}
	if *lastDays > 0 {
		modes++
	}
	if modes != 1 {
		fmt.Fprintln(os.Stderr, "Error: use exactly one of -date, -start/-end, or -last-days")
		fs.Usage()
		return ExitInvalidArgs
	}

	// Resolve the requested dates before touching config or storage so
	// bad input never creates an output directory.
	var single daterange.Date
	var r daterange.Range
	switch {
	case *date != "":
		d, err := daterange.Parse(*date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return ExitInvalidArgs
		}
		single = d
	case *lastDays > 0:
		r = daterange.LastDays(*lastDays)
	default:
		if *start == "" || *end == "" {
			fmt.Fprintln(os.Stderr, "Error: -start and -end are both required for a range")
			return ExitInvalidArgs
		}
		startDate, err := daterange.Parse(*start)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return ExitInvalidArgs
		}
		endDate, err := daterange.Parse(*end)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return ExitInvalidArgs
		}
		r, err = daterange.New(startDate, endDate)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return ExitInvalidArgs
		}
	}

	cfg, err := common.loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitConfigError
	}

	ctx, cancel := signalContext()
	defer cancel()

	s, err := newSession(ctx, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitStorageError
	}
	defer s.close()

	saveMetadata := !cfg.NoMetadata

	if !single.IsZero() {
		outcome := s.downloader.ProcessOne(ctx, single, saveMetadata)
		return printReport([]downloader.Outcome{outcome})
	}

	outcomes := s.downloader.ProcessRange(ctx, r, saveMetadata)
	return printReport(outcomes)
}
