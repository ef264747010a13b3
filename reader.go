// SPDX-License-Identifier: MIT
// Copyright (c) 2026 neogeographica
// Source: github.com/neogeographica/expak

package expak

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"sync"
)

// Reader provides read-only access to a parsed pak file.
type Reader struct {
	// ra is the underlying random-access reader used for payload reads.
	ra io.ReaderAt
	// file is set when Reader owns an *os.File opened via Open.
	file *os.File
	// entries stores parsed immutable directory metadata in table order.
	entries []EntryInfo
	// size is total source size in bytes.
	size int64
	// mu guards closed state and close operation.
	mu sync.Mutex
	// closed reports whether Close was already called.
	closed bool
}

// Open opens a pak file by path and parses its directory table.
func Open(path string) (*Reader, error) {
	f, size, err := openFileWithSize(path)
	if err != nil {
		return nil, err
	}

	r, err := NewReaderFromReaderAt(f, size)
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	r.file = f
	return r, nil
}

// NewReaderFromReaderAt parses a pak from an existing ReaderAt and known size.
func NewReaderFromReaderAt(ra io.ReaderAt, size int64) (*Reader, error) {
	if ra == nil {
		return nil, ErrNilReader
	}

	hdr, err := parseHeader(ra)
	if err != nil {
		return nil, err
	}

	matches, err := parseTable(ra, size, hdr, All)
	if err != nil {
		return nil, err
	}

	entries := make([]EntryInfo, len(matches))
	for i := range matches {
		entries[i] = matches[i].entry
	}

	return &Reader{ra: ra, size: size, entries: entries}, nil
}

// Entries returns a copy of parsed directory entries in table order.
func (r *Reader) Entries() []EntryInfo {
	if r == nil {
		return nil
	}

	entries := make([]EntryInfo, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Close closes the underlying file if the reader owns one.
func (r *Reader) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil
	}

	r.closed = true
	if r.file != nil {
		return r.file.Close()
	}

	return nil
}

// isClosed reports closed state under the reader lock.
func (r *Reader) isClosed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.closed
}

// openFileWithSize opens path for reading and stats its size.
func openFileWithSize(path string) (*os.File, int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("open pak: %w", err)
	}

	fi, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, 0, fmt.Errorf("stat: %w", err)
	}

	return f, fi.Size(), nil
}

// parseHeader validates the signature and decodes the directory location.
// A missing or mismatched signature yields ErrNotPak; a file that carries
// the signature but truncates the two location integers is a fault.
func parseHeader(ra io.ReaderAt) (header, error) {
	var magic [signatureLen]byte
	n, err := ra.ReadAt(magic[:], 0)
	if n < signatureLen || !bytes.Equal(magic[:], []byte(signature)) {
		return header{}, ErrNotPak
	}
	if err != nil && err != io.EOF {
		return header{}, fmt.Errorf("read header: %w", err)
	}

	var fields [2 * uintLen]byte
	if n, err := ra.ReadAt(fields[:], signatureLen); n < len(fields) {
		return header{}, fmt.Errorf("%w reading integer: %w", ErrUnexpectedEOF, err)
	}

	tableOffset := binary.LittleEndian.Uint32(fields[0:uintLen])
	tableLen := binary.LittleEndian.Uint32(fields[uintLen:])
	return header{
		tableOffset: tableOffset,
		count:       tableLen / tableRecordLen,
	}, nil
}

// parseTable decodes directory records in file order, keeping records the
// selection accepts. An exhausted selection skips the table scan entirely.
func parseTable(ra io.ReaderAt, size int64, hdr header, sel Selection) ([]match, error) {
	if sel == nil {
		sel = All
	}
	if sel.Empty() {
		return nil, nil
	}

	sr := io.NewSectionReader(ra, int64(hdr.tableOffset), size-int64(hdr.tableOffset))
	br := bufio.NewReaderSize(sr, tableBufferLen)

	matches := make([]match, 0, hdr.count)
	var rec [tableRecordLen]byte
	for i := uint32(0); i < hdr.count; i++ {
		if _, err := io.ReadFull(br, rec[:nameSlotLen]); err != nil {
			return nil, fmt.Errorf("%w reading resource name: %w", ErrUnexpectedEOF, err)
		}

		name := truncateAtNUL(rec[:nameSlotLen])
		if _, err := io.ReadFull(br, rec[nameSlotLen:]); err != nil {
			return nil, fmt.Errorf("%w reading integer: %w", ErrUnexpectedEOF, err)
		}

		out, ok := sel.Resolve(name)
		if !ok {
			continue
		}

		matches = append(matches, match{
			entry: EntryInfo{
				Name:     name,
				Offset:   binary.LittleEndian.Uint32(rec[nameSlotLen : nameSlotLen+uintLen]),
				DataSize: binary.LittleEndian.Uint32(rec[nameSlotLen+uintLen:]),
			},
			name: out,
		})
	}

	return matches, nil
}

// selectResources parses header and table in one pass over an open source.
func selectResources(ra io.ReaderAt, size int64, sel Selection) ([]match, error) {
	hdr, err := parseHeader(ra)
	if err != nil {
		return nil, err
	}

	return parseTable(ra, size, hdr, sel)
}

// truncateAtNUL interprets a fixed name slot as the bytes before the first
// NUL, discarding any trailing garbage in the slot.
func truncateAtNUL(slot []byte) string {
	if idx := bytes.IndexByte(slot, 0); idx >= 0 {
		return string(slot[:idx])
	}

	return string(slot)
}
