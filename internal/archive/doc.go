// Package archive persists APOD assets and metadata to a blob bucket.
//
// The archive is any bucket gocloud.dev/blob can open. A plain path is
// treated as a local output directory (created if absent); URLs like
// s3://bucket or gs://bucket work once the corresponding driver is
// registered by the importing binary.
//
// # Layout
//
// Each downloaded record produces one asset object named
//
//	{date}_{sanitized_title}{ext}
//
// and, when metadata persistence is enabled, a sibling .json object with
// the same stem holding the record's raw API payload pretty-printed.
//
// # Usage
//
//	store, err := archive.Open(ctx, "apod_images", archive.Options{})
//	defer store.Close()
//
//	exists, err := store.Exists(ctx, key)
//	n, err := store.Write(ctx, key, body, track)
package archive
