// Package apod fetches metadata from NASA's Astronomy Picture of the Day
// API.
//
// The API returns one JSON object for a single-date query and a JSON array
// for a start/end range query. This package normalizes both shapes into
// Record values and keeps each record's raw payload verbatim for metadata
// persistence.
//
// # Usage
//
//	client := apod.NewClient(transport, apod.Options{APIKey: key})
//
//	rec, err := client.Fetch(ctx, date)
//	recs, err := client.FetchRange(ctx, r)
//
// The client issues exactly one request per call; retry policy belongs to
// the caller.
package apod
