package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/apodgrab/apodgrab/internal/downloader"
	"github.com/apodgrab/apodgrab/pkg/daterange"
)

// firstAPOD is the date of the first published picture.
var firstAPOD = daterange.MustParse("1995-06-16")

func runRandom(args []string) int {
	fs := flag.NewFlagSet("random", flag.ExitOnError)
	common := addCommonFlags(fs)

	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, `Usage: apodgrab random [options]

Download the Astronomy Picture of the Day for a random date between the
first APOD (1995-06-16) and today.

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

	date := daterange.RandomBetween(firstAPOD, daterange.Today())
	fmt.Printf("Selected random date: %s\n", date)

	outcome := s.downloader.ProcessOne(ctx, date, !cfg.NoMetadata)
	return printReport([]downloader.Outcome{outcome})
}
