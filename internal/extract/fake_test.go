// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"iter"

	"github.com/pdiddy/sourcebook/internal/document"
)

// fakePage implements document.Page with canned text, error, or panic.
type fakePage struct {
	text   string
	err    error
	panics bool
}

func (f *fakePage) PlainText() (string, error) {
	if f.panics {
		panic("malformed content stream")
	}
	if f.err != nil {
		return "", f.err
	}
	return f.text, nil
}

// fakeDocument implements document.Document over a slice of pages.
type fakeDocument struct {
	pages  []*fakePage
	closed bool
}

func (d *fakeDocument) PageCount() int { return len(d.pages) }

func (d *fakeDocument) Pages() iter.Seq2[int, document.Page] {
	return func(yield func(int, document.Page) bool) {
		for i, p := range d.pages {
			if !yield(i+1, p) {
				return
			}
		}
	}
}

func (d *fakeDocument) Close() error {
	d.closed = true
	return nil
}
