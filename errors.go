// SPDX-License-Identifier: MIT
// Copyright (c) 2026 neogeographica
// Source: github.com/neogeographica/expak

package expak

import "errors"

// Sentinel errors for pak operations. Use errors.Is in callers.
var (
	// ErrNotPak means the file does not start with the pak signature.
	// It is a distinguishable negative result, not a corrupt-archive fault.
	ErrNotPak = errors.New("not a pak file")
	// ErrUnexpectedEOF means the pak data ended before a complete read.
	ErrUnexpectedEOF = errors.New("unexpected end of input")
	// ErrTransform means a caller-supplied transform failed for a resource.
	ErrTransform = errors.New("transform failed")
	// ErrNilReader means the reader is nil.
	ErrNilReader = errors.New("reader is nil")
	// ErrNilTransform means no transform was supplied.
	ErrNilTransform = errors.New("transform is nil")
	// ErrClosed means the reader is already closed.
	ErrClosed = errors.New("reader already closed")
	// ErrEntryNotFound means the named resource is not in the archive.
	ErrEntryNotFound = errors.New("resource not found")
	// ErrInvalidExtractPath means a resource name is invalid as an extraction destination.
	ErrInvalidExtractPath = errors.New("invalid extract path")
	// ErrInvalidSelectPattern means one or more selection rules are invalid.
	ErrInvalidSelectPattern = errors.New("invalid selection rules")
)
