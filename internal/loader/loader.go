package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/CyrilZ0817/tfidf-text-processing/internal/domain"
	"github.com/CyrilZ0817/tfidf-text-processing/internal/stopwords"
)

// Documents reads the given paths into memory. Each path may be a glob
// pattern; only .txt files are taken. The document ID is the base
// filename, which also keys the output report files.
func Documents(paths []string) ([]domain.Document, error) {
	var docs []domain.Document
	for _, p := range paths {
		matches, _ := filepath.Glob(p)
		if matches == nil {
			matches = []string{p}
		}
		for _, m := range matches {
			if !strings.HasSuffix(strings.ToLower(m), ".txt") {
				continue
			}
			data, err := os.ReadFile(m)
			if err != nil {
				return nil, fmt.Errorf("read document %s: %w", m, err)
			}
			docs = append(docs, domain.Document{
				ID:      filepath.Base(m),
				Path:    m,
				Content: string(data),
			})
		}
	}
	if len(docs) == 0 {
		return nil, fmt.Errorf("no .txt documents found")
	}
	return docs, nil
}

// Stopwords loads a stopword list file, one word per line. An empty path
// returns the built-in default set.
func Stopwords(path string) (stopwords.Set, error) {
	if path == "" {
		return stopwords.Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open stopword list %s: %w", path, err)
	}
	defer f.Close()
	set, err := stopwords.FromReader(f)
	if err != nil {
		return nil, fmt.Errorf("parse stopword list %s: %w", path, err)
	}
	return set, nil
}
