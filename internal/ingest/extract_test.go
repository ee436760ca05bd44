package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPDFURLFromViewer(t *testing.T) {
	tests := []struct {
		name     string
		html     string
		pageURL  string
		expected string
		wantErr  bool
	}{
		{
			name:     "absolute src",
			html:     `<html><body><iframe id="mainFrame" src="https://cdn.example.com/manual.pdf"></iframe></body></html>`,
			pageURL:  "https://search.abb.com/library/Download.aspx?DocumentID=X",
			expected: "https://cdn.example.com/manual.pdf",
		},
		{
			name:     "relative src resolved against page",
			html:     `<iframe id="mainFrame" src="/files/manual.pdf"></iframe>`,
			pageURL:  "https://search.abb.com/library/Download.aspx",
			expected: "https://search.abb.com/files/manual.pdf",
		},
		{
			name:     "frame nested deep in the document",
			html:     `<html><body><div><div><iframe id="mainFrame" src="a.pdf"></iframe></div></div></body></html>`,
			pageURL:  "https://search.abb.com/library/Download.aspx",
			expected: "https://search.abb.com/library/a.pdf",
		},
		{
			name:    "no iframe at all",
			html:    `<html><body><p>maintenance</p></body></html>`,
			pageURL: "https://search.abb.com/library/Download.aspx",
			wantErr: true,
		},
		{
			name:    "iframe with wrong id",
			html:    `<iframe id="sideFrame" src="/files/manual.pdf"></iframe>`,
			pageURL: "https://search.abb.com/library/Download.aspx",
			wantErr: true,
		},
		{
			name:    "iframe without src",
			html:    `<iframe id="mainFrame"></iframe>`,
			pageURL: "https://search.abb.com/library/Download.aspx",
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := pdfURLFromViewer([]byte(tc.html), tc.pageURL)
			if tc.wantErr {
				require.Error(t, err)
				assert.Equal(t, KindExtract, KindOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}
