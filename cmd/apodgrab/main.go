package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	// Archive drivers for remote bucket URLs.
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/s3blob"
)

// Exit codes
const (
	ExitSuccess        = 0
	ExitGeneralError   = 1
	ExitInvalidArgs    = 2
	ExitConfigError    = 3
	ExitStorageError   = 4
	ExitDownloadFailed = 5
)

func main() {
	godotenv.Load()
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		printUsage()
		return ExitInvalidArgs
	}

	command := args[0]
	cmdArgs := args[1:]

	switch command {
	case "fetch":
		return runFetch(cmdArgs)
	case "latest":
		return runLatest(cmdArgs)
	case "random":
		return runRandom(cmdArgs)
	case "help", "-h", "--help":
		printUsage()
		return ExitSuccess
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		return ExitInvalidArgs
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `Usage: apodgrab <command> [options]

Commands:
  fetch   Download APOD images for a date, a date range, or the last N days
  latest  Download today's APOD image
  random  Download the APOD image of a random date from the archive

Run 'apodgrab <command> -h' for command-specific help.

The NASA API key is read from -api-key, NASA_API_KEY, or APODGRAB_API_KEY
(falling back to the rate-limited DEMO_KEY). A .env file in the working
directory is loaded first.`)
}
