package core

import (
	"encoding/json"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rest-explorer/internal/types"
)

func TestDecodeDocumentSample(t *testing.T) {
	doc, err := DecodeDocument([]byte(sampleDocument))
	require.NoError(t, err)
	require.Len(t, doc.Groups, 1)
	group := doc.Groups[0]
	assert.Equal(t, "g1", group.UniqueID)
	assert.Equal(t, "u", group.MoreInfoURI)
	require.Len(t, group.Items, 1)
	request := group.Items[0].Request
	assert.Equal(t, "https://x", request.APIURL)
	assert.Equal(t, "get", request.Method)
	assert.Equal(t, types.Object{{Key: "Authorization", Value: "Bearer "}}, request.Headers)
	assert.Equal(t, types.Object{}, request.Body)
}

func TestDecodeDocumentPreservesHeaderOrder(t *testing.T) {
	raw := `{"Groups":[{"UniqueId":"g","Items":[{"UniqueId":"i","Request":{"ApiUrl":"u","Method":"GET",
		"Headers":{"Z-Last":"1","Authorization":"Bearer ","A-First":"2"},"Body":{"n":1}}}]}]}`
	doc, err := DecodeDocument([]byte(raw))
	require.NoError(t, err)
	request := doc.Groups[0].Items[0].Request
	assert.Equal(t, []string{"Z-Last", "Authorization", "A-First"}, request.Headers.Keys())
	value, ok := request.Body.Get("n")
	require.True(t, ok)
	assert.Equal(t, json.Number("1"), value)
}

func TestDecodeDocumentStructuralErrors(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		errMsg string
	}{
		{name: "not json", raw: `{"Groups":`, errMsg: "invalid JSON"},
		{name: "missing groups", raw: `{}`, errMsg: "Groups must be an array"},
		{name: "groups wrong type", raw: `{"Groups":"x"}`, errMsg: "invalid JSON"},
		{name: "missing items", raw: `{"Groups":[{"UniqueId":"g"}]}`, errMsg: "Groups[0].Items must be an array"},
		{
			name:   "missing headers",
			raw:    `{"Groups":[{"UniqueId":"g","Items":[{"UniqueId":"i","Request":{"ApiUrl":"u","Method":"GET","Body":{}}}]}]}`,
			errMsg: "Groups[0].Items[0].Request.Headers must be an object",
		},
		{
			name:   "missing body",
			raw:    `{"Groups":[{"UniqueId":"g","Items":[{"UniqueId":"i","Request":{"ApiUrl":"u","Method":"GET","Headers":{"Authorization":""}}}]}]}`,
			errMsg: "Groups[0].Items[0].Request.Body must be an object",
		},
		{name: "title wrong type", raw: `{"Groups":[{"UniqueId":"g","Title":7,"Items":[]}]}`, errMsg: "invalid JSON"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeDocument([]byte(tt.raw))
			require.Error(t, err)
			assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
			assert.Contains(t, err.Error(), "malformed document")
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestValidateDocument(t *testing.T) {
	base := func() types.Document {
		doc, err := DecodeDocument([]byte(sampleDocument))
		require.NoError(t, err)
		return doc
	}

	tests := []struct {
		name    string
		build   func() types.Document
		wantErr string
	}{
		{name: "valid", build: base},
		{
			name: "empty group id",
			build: func() types.Document {
				doc := base()
				doc.Groups[0].UniqueID = ""
				return doc
			},
			wantErr: "Groups[0].UniqueId failed required",
		},
		{
			name: "empty api url",
			build: func() types.Document {
				doc := base()
				doc.Groups[0].Items[0].Request.APIURL = ""
				return doc
			},
			wantErr: "ApiUrl failed required",
		},
		{
			name: "duplicate group id",
			build: func() types.Document {
				doc := base()
				second := doc.Groups[0]
				second.Items = []types.ItemDocument{}
				doc.Groups = append(doc.Groups, second)
				return doc
			},
			wantErr: "duplicate group id g1",
		},
		{
			name: "duplicate item id across groups",
			build: func() types.Document {
				doc := base()
				second := doc.Groups[0]
				second.UniqueID = "g2"
				doc.Groups = append(doc.Groups, second)
				return doc
			},
			wantErr: "duplicate item id it1 (groups g1 and g2)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDocument(tt.build())
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
