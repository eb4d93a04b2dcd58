// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pdfdoc opens PDF files with github.com/ledongthuc/pdf and exposes
// them through the document interfaces. Only the embedded text layer is
// read; scanned pages come back empty.
package pdfdoc

import (
	"errors"
	"fmt"
	"io/fs"
	"iter"
	"os"

	"github.com/ledongthuc/pdf"

	"github.com/pdiddy/sourcebook/internal/document"
)

// Reader is the production document.Opener.
type Reader struct{}

// NewReader returns a Reader.
func NewReader() *Reader {
	return &Reader{}
}

// Open stats path, then parses it as a PDF. A missing path wraps
// document.ErrInputNotFound; anything the parser rejects, including a panic
// on malformed input, wraps document.ErrParseFailure.
func (r *Reader) Open(path string) (doc document.Document, err error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", path, document.ErrInputNotFound)
		}
		return nil, fmt.Errorf("opening %s: %w: %v", path, document.ErrParseFailure, err)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w: %v", path, document.ErrParseFailure, err)
	}
	defer func() {
		if p := recover(); p != nil {
			f.Close()
			doc = nil
			err = fmt.Errorf("opening %s: %w: %v", path, document.ErrParseFailure, p)
		}
	}()

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("opening %s: %w: %v", path, document.ErrParseFailure, err)
	}

	rd, err := pdf.NewReader(f, info.Size())
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("opening %s: %w: %v", path, document.ErrParseFailure, err)
	}

	count, err := pageCount(rd)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("opening %s: %w: %v", path, document.ErrParseFailure, err)
	}

	return &Document{file: f, reader: rd, pageCount: count}, nil
}

// Bounds on the page tree walk, so a cyclic or hostile tree cannot stall Open.
const (
	maxTreeNodes = 1 << 20
	maxTreeDepth = 256
)

// pageCount returns the declared /Count of the page tree, capped at the
// number of leaf pages actually present. A missing page tree or a
// negative count is an error.
func pageCount(rd *pdf.Reader) (int, error) {
	root := rd.Trailer().Key("Root").Key("Pages")
	if root.IsNull() {
		return 0, errors.New("document has no page tree")
	}

	declared := rd.NumPage()
	if declared < 0 {
		return 0, fmt.Errorf("negative page count %d", declared)
	}

	budget := maxTreeNodes
	leaves, err := countLeaves(root, 0, &budget)
	if err != nil {
		return 0, err
	}
	return min(declared, leaves), nil
}

// countLeaves counts /Page nodes under v, spending one unit of budget per
// node visited.
func countLeaves(v pdf.Value, depth int, budget *int) (int, error) {
	if depth > maxTreeDepth {
		return 0, fmt.Errorf("page tree deeper than %d levels", maxTreeDepth)
	}
	if *budget <= 0 {
		return 0, fmt.Errorf("page tree exceeds %d nodes", maxTreeNodes)
	}
	*budget--

	if v.Key("Type").Name() == "Page" {
		return 1, nil
	}
	kids := v.Key("Kids")
	n := 0
	for i := 0; i < kids.Len(); i++ {
		c, err := countLeaves(kids.Index(i), depth+1, budget)
		if err != nil {
			return 0, err
		}
		n += c
	}
	return n, nil
}

// Document is an opened PDF backed by a ledongthuc/pdf Reader.
type Document struct {
	file      *os.File
	reader    *pdf.Reader
	pageCount int
}

// PageCount returns the number of pages, never more than the page tree holds.
func (d *Document) PageCount() int {
	return d.pageCount
}

// Pages yields a handle for each ordinal 1..PageCount. Handles resolve
// their page lazily so a broken page tree entry only affects that page.
func (d *Document) Pages() iter.Seq2[int, document.Page] {
	return func(yield func(int, document.Page) bool) {
		for n := 1; n <= d.pageCount; n++ {
			if !yield(n, &Page{reader: d.reader, number: n}) {
				return
			}
		}
	}
}

// Close releases the file handle.
func (d *Document) Close() error {
	return d.file.Close()
}

// Page is a lazily resolved page handle.
type Page struct {
	reader *pdf.Reader
	number int
}

// PlainText returns the page's text layer. Fonts are resolved from the
// page's own resources, since resource names like /F1 are page-scoped.
func (p *Page) PlainText() (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("page %d: %w: %v", p.number, document.ErrPageExtraction, r)
		}
	}()

	pg := p.reader.Page(p.number)
	if pg.V.IsNull() {
		return "", fmt.Errorf("page %d missing from page tree: %w", p.number, document.ErrPageExtraction)
	}

	text, err = pg.GetPlainText(nil)
	if err != nil {
		return "", fmt.Errorf("page %d: %w: %v", p.number, document.ErrPageExtraction, err)
	}
	return text, nil
}
