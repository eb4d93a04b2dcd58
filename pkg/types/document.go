// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// PageText pairs a page's 1-based ordinal with the text extracted from it.
// Text is empty when the page had no recoverable text or extraction failed.
type PageText struct {
	// Number is the page's position in the source document, starting at 1.
	Number int `json:"number" yaml:"number"`

	// Text is the extracted text, possibly empty.
	Text string `json:"text" yaml:"text"`
}

// ExtractionResult summarizes one completed extraction run.
type ExtractionResult struct {
	// SourcePath is the input PDF path as supplied by the user.
	SourcePath string `json:"source_path" yaml:"source_path"`

	// OutputPath is the resolved location of the written text file.
	OutputPath string `json:"output_path" yaml:"output_path"`

	// PageCount is the total number of pages in the source document,
	// including pages that yielded no text.
	PageCount int `json:"page_count" yaml:"page_count"`

	// PagesWithText is the number of page blocks in the output.
	PagesWithText int `json:"pages_with_text" yaml:"pages_with_text"`

	// CharCount is the length of the written text in Unicode code points.
	CharCount int `json:"char_count" yaml:"char_count"`
}
