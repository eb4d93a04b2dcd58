// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract pulls text out of document pages and assembles it into a
// single page-labeled body.
package extract

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/pdiddy/sourcebook/internal/document"
	"github.com/pdiddy/sourcebook/pkg/types"
)

// ExtractText returns the text of one page. A page that errors or panics
// inside the parser is logged as a warning and treated as a page with no
// text; ExtractText never fails.
func ExtractText(page document.Page, number int, logger *zap.Logger) (text string) {
	defer func() {
		if r := recover(); r != nil {
			logger.Warn("page extraction panicked, treating page as empty",
				zap.Int("page", number),
				zap.Error(fmt.Errorf("%w: %v", document.ErrPageExtraction, r)))
			text = ""
		}
	}()

	text, err := page.PlainText()
	if err != nil {
		logger.Warn("page extraction failed, treating page as empty",
			zap.Int("page", number),
			zap.Error(err))
		return ""
	}
	if text == "" {
		logger.Debug("page has no text", zap.Int("page", number))
	}
	return text
}

// ExtractAll visits every page of doc in source order and returns one
// PageText per page, including pages with empty text.
func ExtractAll(doc document.Document, logger *zap.Logger) []types.PageText {
	var pages []types.PageText
	for n, page := range doc.Pages() {
		pages = append(pages, types.PageText{
			Number: n,
			Text:   ExtractText(page, n, logger),
		})
	}
	return pages
}
