package adapters

import (
	"encoding/json"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rest-explorer/internal/types"
)

func TestJSONTextRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		obj  types.Object
	}{
		{name: "empty", obj: types.Object{}},
		{
			name: "headers",
			obj: types.Object{
				{Key: "Accept", Value: "application/json;odata=verbose"},
				{Key: "Authorization", Value: "Bearer abc"},
			},
		},
		{
			name: "nested body",
			obj: types.Object{
				{Key: "__metadata", Value: types.Object{{Key: "type", Value: "SP.List"}}},
				{Key: "BaseTemplate", Value: json.Number("100")},
				{Key: "Ratio", Value: json.Number("0.5")},
				{Key: "AllowContentTypes", Value: true},
				{Key: "Owner", Value: nil},
				{Key: "Tags", Value: []any{"a", json.Number("2"), types.Object{{Key: "k", Value: "<v>"}}}},
			},
		},
	}
	adapter := NewJSONTextAdapter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, err := adapter.Format(tt.obj)
			require.NoError(t, err)
			parsed, err := adapter.Parse(text)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.obj, parsed); diff != "" {
				t.Fatalf("round trip changed the object (-want +got):\n%s", diff)
			}
		})
	}
}

func TestJSONTextFormatIsIndentedAndOrdered(t *testing.T) {
	text, err := NewJSONTextAdapter().Format(types.Object{
		{Key: "Z", Value: "1"},
		{Key: "A", Value: types.Object{{Key: "b", Value: true}}},
	})
	require.NoError(t, err)
	want := "{\n  \"Z\": \"1\",\n  \"A\": {\n    \"b\": true\n  }\n}"
	assert.Equal(t, want, text)
}

func TestJSONTextFormatNil(t *testing.T) {
	text, err := NewJSONTextAdapter().Format(nil)
	require.NoError(t, err)
	assert.Equal(t, "{}", text)
}

func TestJSONTextParseErrors(t *testing.T) {
	for _, text := range []string{"", "null", "[]", `"text"`, `{"a":`, `{"a":1} {"b":2}`} {
		t.Run(text, func(t *testing.T) {
			_, err := NewJSONTextAdapter().Parse(text)
			require.Error(t, err)
			assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
		})
	}
}
