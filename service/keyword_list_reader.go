package service

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/kwscout/kwscout/domain"
)

// KeywordListReaderImpl implements the KeywordListReader interface.
// Patterns are doublestar globs; each matched file holds one keyword
// per line, with blank lines and #-comments ignored.
type KeywordListReaderImpl struct{}

// NewKeywordListReader creates a new keyword list reader
func NewKeywordListReader() *KeywordListReaderImpl {
	return &KeywordListReaderImpl{}
}

// CollectKeywords reads keyword lists from files matching the given
// glob patterns, preserving file and line order
func (r *KeywordListReaderImpl) CollectKeywords(patterns []string) ([]string, error) {
	var keywords []string

	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, domain.NewInvalidInputError(fmt.Sprintf("invalid file pattern: %s", pattern), err)
		}
		if len(matches) == 0 {
			return nil, domain.NewInvalidInputError(fmt.Sprintf("no files match pattern: %s", pattern), nil)
		}

		for _, path := range matches {
			fromFile, err := r.readKeywordFile(path)
			if err != nil {
				return nil, err
			}
			keywords = append(keywords, fromFile...)
		}
	}

	return keywords, nil
}

func (r *KeywordListReaderImpl) readKeywordFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, domain.NewInvalidInputError(fmt.Sprintf("failed to open keyword file: %s", path), err)
	}
	defer file.Close()

	var keywords []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		keywords = append(keywords, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, domain.NewInvalidInputError(fmt.Sprintf("failed to read keyword file: %s", path), err)
	}

	return keywords, nil
}
