// Package http provides the HTTP transport used for APOD API and asset
// requests.
//
// This package handles:
//   - Connection pooling across parallel downloads
//   - GET requests for raw bytes and for JSON documents
//   - Per-request timeouts
//   - Mapping status codes to sentinel errors
//
// The client issues exactly one request per call and is not retry-aware;
// callers wrap calls with the retry package.
//
// # Usage
//
//	client := http.NewClient(http.Options{
//	    Timeout: 30 * time.Second,
//	})
//
//	body, size, err := client.Get(ctx, url)
//	defer body.Close()
//
//	var payload any
//	err = client.GetJSON(ctx, url, &payload)
package http
