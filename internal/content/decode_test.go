package content

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeDocument(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		doc     Document
		wantID  string
		wantErr bool
	}{
		{
			name:   "id taken from document",
			doc:    Document{ID: "doc-1", Data: json.RawMessage(`{"title":"Hello"}`)},
			wantID: "doc-1",
		},
		{
			name:   "id in data wins",
			doc:    Document{ID: "doc-1", Data: json.RawMessage(`{"id":"inner","title":"Hello"}`)},
			wantID: "inner",
		},
		{
			name:    "empty data",
			doc:     Document{ID: "doc-1"},
			wantErr: true,
		},
		{
			name:    "not an object",
			doc:     Document{ID: "doc-1", Data: json.RawMessage(`[1,2]`)},
			wantErr: true,
		},
		{
			name:    "wrong field type",
			doc:     Document{ID: "doc-1", Data: json.RawMessage(`{"title":42}`)},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			article, err := DecodeDocument[Article](tt.doc)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, article.ID)
			assert.Equal(t, "Hello", article.Title)
		})
	}
}

func TestDecodeDocuments_SkipsFailures(t *testing.T) {
	t.Parallel()

	docs := []Document{
		{ID: "a", Data: json.RawMessage(`{"name":"Alpha"}`)},
		{ID: "b", Data: json.RawMessage(`not json`)},
		{ID: "c", Data: json.RawMessage(`{"name":"Gamma"}`)},
	}

	var skipped []string
	teams := DecodeDocuments[Team](docs, func(doc Document, _ error) {
		skipped = append(skipped, doc.ID)
	})

	require.Len(t, teams, 2)
	assert.Equal(t, "Alpha", teams[0].Name)
	assert.Equal(t, "c", teams[1].ID)
	assert.Equal(t, []string{"b"}, skipped)
}
