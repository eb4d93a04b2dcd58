// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package document defines the contract between the extraction pipeline and
// the PDF-parsing collaborator, plus the error kinds the pipeline reports.
package document

import (
	"errors"
	"iter"
)

var (
	// ErrInvalidArguments reports a command line without both an input path
	// and an output name.
	ErrInvalidArguments = errors.New("invalid arguments")

	// ErrInputNotFound reports an input path that does not exist.
	ErrInputNotFound = errors.New("input not found")

	// ErrParseFailure reports an input that exists but cannot be opened as a PDF.
	ErrParseFailure = errors.New("cannot parse PDF")

	// ErrPageExtraction reports a single page that could not yield text.
	// It is never fatal; the extractor downgrades it to an empty page.
	ErrPageExtraction = errors.New("page extraction failed")

	// ErrIOWriteFailure reports a destination that could not be created or written.
	ErrIOWriteFailure = errors.New("cannot write output")
)

// Page is an opaque handle to one page of an opened Document.
type Page interface {
	// PlainText returns the page's extractable text. An image-only page
	// returns "" and a nil error.
	PlainText() (string, error)
}

// Document is an opened PDF. It is read-only and must be closed once all
// pages have been visited.
type Document interface {
	// PageCount returns the number of pages in the document.
	PageCount() int

	// Pages yields every page with its 1-based ordinal, in source order.
	Pages() iter.Seq2[int, Page]

	// Close releases the underlying file handle.
	Close() error
}

// Opener opens a Document by filesystem path. Implementations wrap
// ErrInputNotFound and ErrParseFailure.
type Opener interface {
	Open(path string) (Document, error)
}
