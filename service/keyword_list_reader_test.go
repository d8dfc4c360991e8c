package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kwscout/kwscout/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeKeywordFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCollectKeywords(t *testing.T) {
	dir := t.TempDir()
	writeKeywordFile(t, dir, "a.txt", "youtube SEO\nvideo marketing\n")
	writeKeywordFile(t, dir, "b.txt", "# comment line\n\ncontent creation\n   padded keyword   \n")

	reader := NewKeywordListReader()
	keywords, err := reader.CollectKeywords([]string{filepath.Join(dir, "*.txt")})
	require.NoError(t, err)

	assert.Equal(t, []string{"youtube SEO", "video marketing", "content creation", "padded keyword"}, keywords)
}

func TestCollectKeywordsGlobstar(t *testing.T) {
	dir := t.TempDir()
	nested := filepath.Join(dir, "lists", "inner")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	writeKeywordFile(t, nested, "deep.txt", "cats\n")

	reader := NewKeywordListReader()
	keywords, err := reader.CollectKeywords([]string{filepath.Join(dir, "**", "*.txt")})
	require.NoError(t, err)
	assert.Equal(t, []string{"cats"}, keywords)
}

func TestCollectKeywordsNoMatch(t *testing.T) {
	reader := NewKeywordListReader()

	_, err := reader.CollectKeywords([]string{filepath.Join(t.TempDir(), "absent-*.txt")})
	require.Error(t, err)
	assert.True(t, domain.IsErrorCode(err, domain.ErrCodeInvalidInput))
}
