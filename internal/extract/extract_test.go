// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/pdiddy/sourcebook/internal/document"
	"github.com/pdiddy/sourcebook/pkg/types"
)

func TestExtractText(t *testing.T) {
	tests := []struct {
		name      string
		page      *fakePage
		want      string
		wantWarns int
	}{
		{
			name: "page with text",
			page: &fakePage{text: "Roll for initiative."},
			want: "Roll for initiative.",
		},
		{
			name: "image-only page",
			page: &fakePage{},
			want: "",
		},
		{
			name:      "parser error",
			page:      &fakePage{err: errors.New("unknown font encoding")},
			want:      "",
			wantWarns: 1,
		},
		{
			name:      "parser panic",
			page:      &fakePage{panics: true},
			want:      "",
			wantWarns: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.WarnLevel)
			got := ExtractText(tt.page, 7, zap.New(core))

			assert.Equal(t, tt.want, got)
			require.Equal(t, tt.wantWarns, logs.Len())
			for _, entry := range logs.All() {
				assert.Equal(t, int64(7), entry.ContextMap()["page"])
			}
		})
	}
}

func TestExtractText_PanicWrapsPageExtraction(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	ExtractText(&fakePage{panics: true}, 1, zap.New(core))

	require.Equal(t, 1, logs.Len())
	field, ok := logs.All()[0].ContextMap()["error"].(string)
	require.True(t, ok)
	assert.Contains(t, field, document.ErrPageExtraction.Error())
	assert.Contains(t, field, "malformed content stream")
}

func TestExtractAll_KeepsOrdinals(t *testing.T) {
	doc := &fakeDocument{pages: []*fakePage{
		{text: "Introduction"},
		{err: errors.New("broken xobject")},
		{},
		{text: "Appendix A"},
	}}

	got := ExtractAll(doc, zap.NewNop())

	assert.Equal(t, []types.PageText{
		{Number: 1, Text: "Introduction"},
		{Number: 2, Text: ""},
		{Number: 3, Text: ""},
		{Number: 4, Text: "Appendix A"},
	}, got)
}

func TestExtractAll_ZeroPages(t *testing.T) {
	got := ExtractAll(&fakeDocument{}, zap.NewNop())
	assert.Empty(t, got)
}
