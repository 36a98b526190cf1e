package utils

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func TestJoinPath(t *testing.T) {
	base := t.TempDir()

	path, err := JoinPath(base, "templates/style.css")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "templates", "style.css"), path)

	path, err = JoinPath(base, "a/../b")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "b"), path)

	_, err = JoinPath(base, "../escape")
	assert.Error(t, err)
}

func TestJoinPathBody(t *testing.T) {
	file := filepath.Join(t.TempDir(), "config.hcl")
	body := &hclsyntax.Body{
		SrcRange: hcl.Range{Filename: file},
	}

	path, err := JoinPath(body, "structure.json")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(filepath.Dir(file), "structure.json"), path)
}

func TestFromCtyValue(t *testing.T) {
	var out struct {
		Name   string `json:"name"`
		Strict bool   `json:"strict"`
		Size   int    `json:"size"`
	}
	out.Size = 7

	value := cty.ObjectVal(map[string]cty.Value{
		"name":   cty.StringVal("theme"),
		"strict": cty.True,
		"size":   cty.NullVal(cty.Number),
	})
	require.NoError(t, FromCtyValue(value, &out))

	assert.Equal(t, "theme", out.Name)
	assert.True(t, out.Strict)
	assert.Equal(t, 7, out.Size)
}

func TestDiffLines(t *testing.T) {
	lines, err := DiffLines(nil, []byte("a\nb"))
	require.NoError(t, err)
	assert.Contains(t, lines, "+ a")
	assert.Contains(t, lines, "+ b")

	lines, err = DiffLines([]byte("same"), []byte("same"))
	require.NoError(t, err)
	assert.Nil(t, lines)

	lines, err = DiffLines([]byte("old"), []byte("new"))
	require.NoError(t, err)
	joined := strings.Join(lines, "\n")
	assert.Contains(t, joined, "-")
	assert.Contains(t, joined, "+")
}
