package patch_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cityinfo-api/internal/pkg/patch"
)

type note struct {
	Title string
	Body  *string
}

func (n *note) SetField(field string, value json.RawMessage) error {
	switch field {
	case "title":
		return json.Unmarshal(value, &n.Title)
	case "body":
		return json.Unmarshal(value, &n.Body)
	default:
		return patch.ErrUnknownField
	}
}

func (n *note) RemoveField(field string) error {
	switch field {
	case "title":
		n.Title = ""
	case "body":
		n.Body = nil
	default:
		return patch.ErrUnknownField
	}
	return nil
}

func TestApply(t *testing.T) {
	body := "old body"
	n := &note{Title: "old", Body: &body}

	doc, err := patch.Decode([]byte(`[
		{"op": "replace", "path": "/title", "value": "new"},
		{"op": "remove", "path": "/body"},
		{"op": "add", "path": "/body", "value": "fresh"}
	]`))
	require.NoError(t, err)

	require.NoError(t, patch.Apply(doc, n))
	assert.Equal(t, "new", n.Title)
	require.NotNil(t, n.Body)
	assert.Equal(t, "fresh", *n.Body)
}

func TestApply_NullValueIsPassedToTarget(t *testing.T) {
	body := "old body"
	n := &note{Title: "old", Body: &body}

	doc, err := patch.Decode([]byte(`[{"op": "replace", "path": "/body", "value": null}]`))
	require.NoError(t, err)
	require.Len(t, doc, 1)
	assert.Equal(t, json.RawMessage(`null`), doc[0].Value)

	require.NoError(t, patch.Apply(doc, n))
	assert.Nil(t, n.Body)
	assert.Equal(t, "old", n.Title)
}

func TestApply_Failures(t *testing.T) {
	tests := []struct {
		name      string
		document  string
		wantIndex int
	}{
		{"unknown field", `[{"op": "replace", "path": "/nope", "value": 1}]`, 0},
		{"unsupported op", `[{"op": "replace", "path": "/title", "value": "x"}, {"op": "move", "from": "/title", "path": "/body"}]`, 1},
		{"nested path", `[{"op": "replace", "path": "/title/0", "value": "x"}]`, 0},
		{"missing slash", `[{"op": "replace", "path": "title", "value": "x"}]`, 0},
		{"missing value", `[{"op": "add", "path": "/title"}]`, 0},
		{"wrong type", `[{"op": "replace", "path": "/title", "value": 42}]`, 0},
		{"missing op", `[{"path": "/title", "value": "x"}]`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := patch.Decode([]byte(tt.document))
			require.NoError(t, err)

			err = patch.Apply(doc, &note{Title: "keep"})
			require.Error(t, err)

			var patchErr *patch.Error
			require.ErrorAs(t, err, &patchErr)
			assert.Equal(t, tt.wantIndex, patchErr.Index)
		})
	}
}

func TestDecode_Malformed(t *testing.T) {
	_, err := patch.Decode([]byte(`{"op": "replace"}`))
	assert.Error(t, err)

	_, err = patch.Decode([]byte(`null`))
	assert.Error(t, err)
}
