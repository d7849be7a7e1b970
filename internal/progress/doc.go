// Package progress reports download progress for a batch run.
//
// The reporter aggregates byte and file counters across concurrent
// downloads and periodically prints a status line. Each download gets a
// Tracker carrying its name and total size at start and receiving byte
// increments as the body streams; the reporter is purely observational and
// never affects control flow.
//
// # Usage
//
//	reporter := progress.NewReporter(progress.Options{Output: os.Stderr})
//	reporter.Start()
//	defer reporter.Stop()
//
//	track := reporter.Track("2024-01-05_Crab_Nebula.jpg", totalBytes)
//	track.Add(n) // per written chunk
//	track.Done(true)
//
// A nil *Tracker is valid and discards all updates, so callers can thread
// one through unconditionally.
package progress
