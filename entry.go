// SPDX-License-Identifier: MIT
// Copyright (c) 2026 neogeographica
// Source: github.com/neogeographica/expak

package expak

import (
	"fmt"
	"io"
)

// nopCloser wraps a reader and provides a no-op close.
type nopCloser struct {
	io.Reader
}

// Close closes nopCloser (no-op).
func (nopCloser) Close() error {
	return nil
}

// findEntryByName resolves the first entry with the given stored name.
func (r *Reader) findEntryByName(name string) *EntryInfo {
	for i := range r.entries {
		if r.entries[i].Name == name {
			return &r.entries[i]
		}
	}

	return nil
}

// OpenEntry opens the named resource payload for reading. When the archive
// stores duplicate names, the first directory record wins.
func (r *Reader) OpenEntry(name string) (io.ReadCloser, error) {
	if r == nil || r.ra == nil {
		return nil, ErrNilReader
	}
	if r.isClosed() {
		return nil, ErrClosed
	}

	info := r.findEntryByName(name)
	if info == nil {
		return nil, fmt.Errorf("%w: %s", ErrEntryNotFound, name)
	}

	return nopCloser{Reader: io.NewSectionReader(r.ra, int64(info.Offset), int64(info.DataSize))}, nil
}

// ReadEntry reads the full payload of the named resource.
func (r *Reader) ReadEntry(name string) ([]byte, error) {
	if r == nil || r.ra == nil {
		return nil, ErrNilReader
	}
	if r.isClosed() {
		return nil, ErrClosed
	}

	info := r.findEntryByName(name)
	if info == nil {
		return nil, fmt.Errorf("%w: %s", ErrEntryNotFound, name)
	}

	return readEntryData(r.ra, *info)
}

// readEntryData reads exactly the declared payload of one directory entry.
// A short read is a fault; the archive promised DataSize bytes at Offset.
func readEntryData(ra io.ReaderAt, info EntryInfo) ([]byte, error) {
	if info.DataSize == 0 {
		return []byte{}, nil
	}

	data := make([]byte, info.DataSize)
	n, err := ra.ReadAt(data, int64(info.Offset))
	if n < len(data) {
		return nil, fmt.Errorf("%w reading resource data: %w", ErrUnexpectedEOF, err)
	}

	return data, nil
}
