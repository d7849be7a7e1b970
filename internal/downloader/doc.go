// Package downloader orchestrates the concurrent fetch-and-persist
// pipeline.
//
// A date range is split into API-sized chunks. Each chunk's metadata is
// fetched in one call (under retry), then every record in the chunk is
// processed concurrently across a bounded worker pool: skip non-image
// records, pick the best asset URL, stream the asset into the archive, and
// optionally persist the record's raw metadata next to it. Per-record
// results are collected into Outcome values; one record's failure never
// aborts its siblings or the batch.
//
// # Usage
//
//	d := downloader.New(transport, api, store, downloader.Options{
//	    Workers: 5,
//	})
//
//	outcomes := d.ProcessRange(ctx, r, true)
//
// # Worker Pool
//
// Workers receive records from a channel and send Outcomes to a fan-in
// channel read by the single owning goroutine, so the aggregation buffer
// is never shared. The orchestrator drains one chunk completely before
// fetching the next, bounding live memory to one chunk's record set.
package downloader
