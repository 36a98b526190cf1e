package structure

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSON(t *testing.T) {
	doc, err := Decode([]byte(`{
		"items": [
			{
				"name": "content",
				"type": "directory",
				"children": [
					{"name": "themes", "type": "directory", "condition": "when-parent-not-empty"},
					{
						"name": ".gitignore",
						"type": "file",
						"default_content": {"source": "raw", "value": "node_modules/"}
					}
				]
			}
		]
	}`), ".json")
	require.NoError(t, err)
	require.Len(t, doc.Items, 1)

	content := doc.Items[0]
	assert.Equal(t, "content", content.Name)
	assert.Equal(t, KindDirectory, content.Kind)
	assert.Equal(t, ConditionNone, content.Condition)
	require.Len(t, content.Children, 2)

	themes := content.Children[0]
	assert.Equal(t, ConditionParentNotEmpty, themes.Condition)
	assert.False(t, themes.HasChildren())

	gitignore := content.Children[1]
	assert.Equal(t, KindFile, gitignore.Kind)
	require.NotNil(t, gitignore.DefaultContent)
	assert.Equal(t, SourceRaw, gitignore.DefaultContent.Source)
	assert.Equal(t, "node_modules/", gitignore.DefaultContent.Value)
}

func TestDecodeYAML(t *testing.T) {
	doc, err := Decode([]byte(`
items:
  - name: wp-content
    type: directory
    children:
      - name: style.css
        type: file
        default_content:
          source: from_url
          value: https://example.com/style.css
`), ".yml")
	require.NoError(t, err)
	require.Len(t, doc.Items, 1)

	style := doc.Items[0].Children[0]
	assert.Equal(t, KindFile, style.Kind)
	assert.Equal(t, SourceURL, style.DefaultContent.Source)
	assert.Equal(t, "https://example.com/style.css", style.DefaultContent.Value)
}

func TestDecodeUnrecognizedTags(t *testing.T) {
	doc, err := Decode([]byte(`{"items": [
		{"name": "a", "type": "symlink"},
		{"name": "b"},
		{"name": "c", "type": "file", "condition": "sometimes",
		 "default_content": {"source": "from_ftp", "value": "x"}}
	]}`), ".json")
	require.NoError(t, err)

	assert.Equal(t, KindUnknown, doc.Items[0].Kind)
	assert.Equal(t, KindNone, doc.Items[1].Kind)
	assert.Equal(t, ConditionUnknown, doc.Items[2].Condition)
	assert.Equal(t, SourceUnknown, doc.Items[2].DefaultContent.Source)
}

func TestDecodeMissingItems(t *testing.T) {
	_, err := Decode([]byte(`{"name": "x"}`), ".json")
	assert.Error(t, err)

	_, err = Decode([]byte(`{"items": [`), ".json")
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "structure.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"items": []}`), 0o600))

	doc, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, doc.Items)
	assert.Equal(t, dir, doc.Dir())

	_, err = Load(filepath.Join(dir, "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestProblems(t *testing.T) {
	doc, err := Decode([]byte(`{"items": [
		{"name": "group", "children": [
			{"name": "ok", "type": "directory"},
			{"name": "bad", "type": "socket"},
			{"name": "empty"}
		]},
		{"name": "dir", "type": "directory",
		 "default_content": {"source": "raw", "value": "x"}},
		{"name": "file", "type": "file", "condition": "maybe",
		 "default_content": {"source": "nope", "value": "x"}}
	]}`), ".json")
	require.NoError(t, err)

	problems := doc.Problems()
	reasons := map[string]string{}
	for _, p := range problems {
		reasons[p.Path] = p.Reason
	}

	assert.NotContains(t, reasons, "/group")
	assert.NotContains(t, reasons, "/group/ok")
	assert.Equal(t, "unrecognized type", reasons["/group/bad"])
	assert.Equal(t, "missing type", reasons["/group/empty"])
	assert.Equal(t, "default_content is only valid for files", reasons["/dir"])
	assert.Equal(t, "unrecognized condition", reasons["/file"])

	assert.Error(t, doc.Validate())
}

func TestValidateClean(t *testing.T) {
	doc, err := Decode([]byte(`{"items": [{"name": "a", "type": "directory"}]}`), ".json")
	require.NoError(t, err)
	assert.NoError(t, doc.Validate())
}

func TestKindRoundTrip(t *testing.T) {
	for _, kind := range []Kind{KindDirectory, KindFile} {
		text, err := kind.MarshalText()
		require.NoError(t, err)

		var decoded Kind
		require.NoError(t, decoded.UnmarshalText(text))
		assert.Equal(t, kind, decoded)
	}
}
