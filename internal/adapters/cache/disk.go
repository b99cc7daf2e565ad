package cache

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ErrBadKey is an error thrown when a cache key would escape the cache dir
var ErrBadKey = errors.New("invalid cache key")

// Disk is a read-through disk cache for remote objects, keyed by remote
// reference id. Entries are immutable once written (ids are assumed
// content-addressed) so there is no expiry or invalidation path. Entries are
// published by rename, so a partially written file is never visible under
// its final name.
type Disk struct {
	dir    string
	logger *slog.Logger
}

// NewDisk creates the cache directory if needed and returns a Disk
func NewDisk(dir string, logger *slog.Logger) (*Disk, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create cache dir: %w", err)
	}
	return &Disk{dir: dir, logger: logger}, nil
}

// Open returns the cached entry for remoteID, or an error on a miss
func (d *Disk) Open(remoteID string) (*os.File, error) {
	path, err := d.path(remoteID)
	if err != nil {
		return nil, err
	}
	return os.Open(path)
}

// WriteThrough copies src to w while teeing the bytes into a new cache entry
// for remoteID. The two sinks are independent failure domains: a cache write
// failure degrades to plain pass-through and a client write failure does not
// abort the cache fill. Only a source failure is returned, and it removes
// whatever partial entry was written so a later request refetches.
func (d *Disk) WriteThrough(remoteID string, w io.Writer, src io.Reader) error {
	path, err := d.path(remoteID)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(d.dir, filepath.Base(path)+".partial-"+uuid.New().String())
	if err != nil {
		d.logger.Error("cache fill skipped, cannot create temp file", "remoteID", remoteID, "error", err)
		_, copyErr := io.Copy(w, src)
		return copyErr
	}

	clientSink := &quietWriter{w: w}
	cacheSink := &quietWriter{w: tmp}

	_, srcErr := io.Copy(io.MultiWriter(clientSink, cacheSink), src)
	closeErr := tmp.Close()

	if srcErr != nil || cacheSink.err != nil || closeErr != nil {
		if removeErr := os.Remove(tmp.Name()); removeErr != nil {
			d.logger.Error("failed to remove partial cache file", "path", tmp.Name(), "error", removeErr)
		}
		if srcErr != nil {
			return fmt.Errorf("remote stream failed: %w", srcErr)
		}
		d.logger.Error("cache fill failed, served pass-through", "remoteID", remoteID, "error", errors.Join(cacheSink.err, closeErr))
		return nil
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		d.logger.Error("failed to publish cache entry", "remoteID", remoteID, "error", err)
		os.Remove(tmp.Name())
	}

	if clientSink.err != nil {
		d.logger.Warn("client went away during media stream", "remoteID", remoteID, "error", clientSink.err)
	}
	return nil
}

// path rejects ids that would resolve outside the cache directory
func (d *Disk) path(remoteID string) (string, error) {
	if remoteID == "" || strings.ContainsAny(remoteID, `/\`) || strings.Contains(remoteID, "..") {
		return "", fmt.Errorf("%w: %q", ErrBadKey, remoteID)
	}
	return filepath.Join(d.dir, remoteID), nil
}

// quietWriter records the first error and swallows the rest so one failing
// sink never aborts the copy feeding its sibling.
type quietWriter struct {
	w   io.Writer
	err error
}

func (q *quietWriter) Write(p []byte) (int, error) {
	if q.err != nil {
		return len(p), nil
	}
	n, err := q.w.Write(p)
	if err != nil {
		q.err = err
		return len(p), nil
	}
	if n < len(p) {
		q.err = io.ErrShortWrite
	}
	return len(p), nil
}
