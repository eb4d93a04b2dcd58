// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert runs the PDF-to-text pipeline: open the document, extract
// every page, assemble the labeled text, and write it out.
package convert

import (
	"go.uber.org/zap"

	"github.com/pdiddy/sourcebook/internal/document"
	"github.com/pdiddy/sourcebook/internal/extract"
	"github.com/pdiddy/sourcebook/internal/output"
	"github.com/pdiddy/sourcebook/pkg/types"
)

// Converter sequences one extraction run. Opener is the PDF collaborator;
// Logger receives per-page diagnostics.
type Converter struct {
	Opener document.Opener
	Logger *zap.Logger
}

// New returns a Converter. A nil logger discards diagnostics.
func New(opener document.Opener, logger *zap.Logger) *Converter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Converter{Opener: opener, Logger: logger}
}

// Convert extracts the text of the PDF at inputPath into outputPath. The
// Opener reports a missing input before anything is written, so a missing
// input leaves the filesystem untouched. Page failures are absorbed; open
// and write failures abort the run.
func (c *Converter) Convert(inputPath, outputPath string) (types.ExtractionResult, error) {
	result := types.ExtractionResult{SourcePath: inputPath, OutputPath: outputPath}

	pages, pageCount, err := c.extract(inputPath)
	if err != nil {
		return result, err
	}
	result.PageCount = pageCount
	result.PagesWithText = extract.CountBlocks(pages)

	text := extract.Assemble(pages)
	c.Logger.Debug("assembled text",
		zap.String("source", inputPath),
		zap.Int("pages", result.PageCount),
		zap.Int("pages_with_text", result.PagesWithText))

	chars, err := output.Write(outputPath, text)
	if err != nil {
		return result, err
	}
	result.CharCount = chars

	return result, nil
}

// extract opens the document, visits every page, and releases the document
// before returning.
func (c *Converter) extract(inputPath string) ([]types.PageText, int, error) {
	doc, err := c.Opener.Open(inputPath)
	if err != nil {
		return nil, 0, err
	}
	defer func() {
		if err := doc.Close(); err != nil {
			c.Logger.Warn("closing document", zap.String("source", inputPath), zap.Error(err))
		}
	}()

	return extract.ExtractAll(doc, c.Logger), doc.PageCount(), nil
}
