// Package fs writes extracted documents to disk as markdown files with
// YAML frontmatter, mirroring the source URL's path structure.
package fs

import (
	"context"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/ogniew/pith"
)

// SourceToPath converts a document source URL to a relative file path.
// Example: https://example.com/blog/post → blog/post.md
func SourceToPath(source string) (string, error) {
	u, err := url.Parse(source)
	if err != nil {
		return "", err
	}

	path := u.Path

	// Root or trailing slash becomes index.md.
	if path == "" || path == "/" {
		return "index.md", nil
	}

	path = strings.TrimPrefix(path, "/")

	if strings.HasSuffix(path, "/") {
		return path + "index.md", nil
	}

	return path + ".md", nil
}

// FormatDocument formats a document with YAML frontmatter.
func FormatDocument(doc *pith.Document) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("source: ")
	b.WriteString(doc.Source)
	b.WriteString("\ntitle: ")
	b.WriteString(doc.Title)
	b.WriteString("\nfetched: ")
	b.WriteString(doc.FetchedAt.Format("2006-01-02"))
	b.WriteString("\n---\n\n")
	b.WriteString(doc.Content)
	return b.String()
}

// Ensure Writer implements pith.DocumentWriter at compile time.
var _ pith.DocumentWriter = (*Writer)(nil)

// Writer writes documents as markdown files to a directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// WriteDocument writes a document to disk as a markdown file.
func (w *Writer) WriteDocument(ctx context.Context, doc *pith.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	relPath, err := SourceToPath(doc.Source)
	if err != nil {
		return err
	}

	fullPath := filepath.Join(w.baseDir, relPath)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	return os.WriteFile(fullPath, []byte(FormatDocument(doc)), 0644)
}
