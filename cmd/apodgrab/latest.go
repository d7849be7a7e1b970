package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/apodgrab/apodgrab/internal/downloader"
	"github.com/apodgrab/apodgrab/pkg/daterange"
)

func runLatest(args []string) int {
	fs := flag.NewFlagSet("latest", flag.ExitOnError)
	common := addCommonFlags(fs)

	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, `Usage: apodgrab latest [options]

Download today's Astronomy Picture of the Day.

Options:`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return ExitInvalidArgs
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

	outcome := s.downloader.ProcessOne(ctx, daterange.Today(), !cfg.NoMetadata)
	return printReport([]downloader.Outcome{outcome})
}
