package archive

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"

	"github.com/apodgrab/apodgrab/internal/progress"
)

// DefaultBufferSize is the copy buffer used when streaming asset bodies.
const DefaultBufferSize = 64 * 1024

// Options configures the store.
type Options struct {
	// BufferSize is the size of the streaming copy buffer.
	// Default: DefaultBufferSize.
	BufferSize int
}

// Store writes assets and metadata to a blob bucket.
type Store struct {
	bucket  *blob.Bucket
	bufSize int
}

// Open opens the archive at location. A location without a URL scheme is a
// local directory, created if absent; otherwise it is passed to
// blob.OpenBucket and resolved against the drivers the binary registered.
func Open(ctx context.Context, location string, opts Options) (*Store, error) {
	var bucket *blob.Bucket
	var err error

	if strings.Contains(location, "://") {
		bucket, err = blob.OpenBucket(ctx, location)
	} else {
		if err = os.MkdirAll(location, 0o755); err != nil {
			return nil, fmt.Errorf("create output directory: %w", err)
		}
		bucket, err = fileblob.OpenBucket(location, nil)
	}
	if err != nil {
		return nil, fmt.Errorf("open archive %s: %w", location, err)
	}

	return NewStore(bucket, opts), nil
}

// NewStore wraps an already-open bucket.
func NewStore(bucket *blob.Bucket, opts Options) *Store {
	if opts.BufferSize <= 0 {
		opts.BufferSize = DefaultBufferSize
	}
	return &Store{bucket: bucket, bufSize: opts.BufferSize}
}

// Close releases the underlying bucket.
func (s *Store) Close() error {
	return s.bucket.Close()
}

// Exists reports whether an object is already archived under key.
func (s *Store) Exists(ctx context.Context, key string) (bool, error) {
	return s.bucket.Exists(ctx, key)
}

// Write streams body into the bucket under key, copying in fixed-size
// chunks and reporting each written increment to track (which may be nil).
// Returns the number of bytes written.
func (s *Store) Write(ctx context.Context, key string, body io.Reader, track *progress.Tracker) (int64, error) {
	w, err := s.bucket.NewWriter(ctx, key, nil)
	if err != nil {
		return 0, fmt.Errorf("open writer for %s: %w", key, err)
	}

	var written int64
	buf := make([]byte, s.bufSize)
	for {
		n, readErr := body.Read(buf)
		if n > 0 {
			nw, writeErr := w.Write(buf[:n])
			written += int64(nw)
			track.Add(int64(nw))
			if writeErr != nil {
				w.Close()
				return written, fmt.Errorf("write %s: %w", key, writeErr)
			}
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			w.Close()
			return written, fmt.Errorf("read body for %s: %w", key, readErr)
		}
	}

	if err := w.Close(); err != nil {
		return written, fmt.Errorf("finish %s: %w", key, err)
	}
	return written, nil
}

// WriteMetadata stores a record's raw payload pretty-printed under the
// metadata sibling of assetKey.
func (s *Store) WriteMetadata(ctx context.Context, assetKey string, raw json.RawMessage) error {
	var pretty bytes.Buffer
	if err := json.Indent(&pretty, raw, "", "  "); err != nil {
		return fmt.Errorf("format metadata for %s: %w", assetKey, err)
	}

	key := MetadataName(assetKey)
	opts := &blob.WriterOptions{ContentType: "application/json"}
	if err := s.bucket.WriteAll(ctx, key, pretty.Bytes(), opts); err != nil {
		return fmt.Errorf("write metadata %s: %w", key, err)
	}
	return nil
}
