// SPDX-License-Identifier: MIT
// Copyright (c) 2026 neogeographica
// Source: github.com/neogeographica/expak

package expak

// Binary layout constants of the pak format.
const (
	// signature is the 4-byte magic at offset zero of every pak file.
	signature = "PACK"
	// signatureLen is the byte length of the magic.
	signatureLen = 4
	// headerLen is signature plus table offset and table length integers.
	headerLen = signatureLen + 2*uintLen
	// nameSlotLen is the fixed NUL-padded name slot in a directory record.
	nameSlotLen = 56
	// uintLen is the byte length of every integer field in the format.
	uintLen = 4
	// tableRecordLen is the fixed directory record size.
	tableRecordLen = nameSlotLen + 2*uintLen
)

// tableBufferLen is a sequential read buffer for directory table parsing.
const tableBufferLen = 64 * 1024

// header locates the directory table inside a pak file.
type header struct {
	// tableOffset is the absolute byte offset of the first directory record.
	tableOffset uint32
	// count is the number of complete records in the table. The stored table
	// byte length is divided by the record size with truncation; a trailing
	// partial record is ignored, as the original format tools do.
	count uint32
}

// EntryInfo describes a single parsed directory record.
type EntryInfo struct {
	// Name is the resource name, truncated at the first NUL in its slot.
	// Names are not guaranteed unique within one archive.
	Name string `json:"name" yaml:"name"`
	// Offset is the absolute byte offset of the resource payload.
	Offset uint32 `json:"offset" yaml:"offset"`
	// DataSize is the payload size in bytes.
	DataSize uint32 `json:"data_size" yaml:"data_size"`
}

// match pairs a selected directory entry with its resolved output name.
type match struct {
	entry EntryInfo
	name  string
}
