package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/ogniew/pith"
	main "github.com/ogniew/pith/cmd/pith"
	"github.com/ogniew/pith/distill"
	pithhtml "github.com/ogniew/pith/html"
	"github.com/ogniew/pith/htmltomarkdown"
	"github.com/ogniew/pith/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPage = `<html>
<head><title>Sample Article</title></head>
<body>
<div>
<h1>Sample Article</h1>
<p>the first paragraph of the sample article carries a reasonable number
of ordinary words so the pipeline settles on this container easily</p>
<p>the second paragraph continues the prose and keeps the candidate from
collapsing onto one single paragraph during the walk downwards</p>
</div>
</body>
</html>`

// writeTestPage writes the sample page to a temp file and returns its path.
func writeTestPage(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "page.html")
	require.NoError(t, os.WriteFile(path, []byte(testPage), 0644))
	return path
}

func distillDeps(stdout, stderr *bytes.Buffer) *main.Dependencies {
	return &main.Dependencies{
		Ctx:       context.Background(),
		Stdout:    stdout,
		Stderr:    stderr,
		Extractor: distill.NewExtractor(pithhtml.NewParser(), distill.DefaultConfig()),
		Inspector: distill.NewExtractor(pithhtml.NewParser(), distill.DefaultConfig()),
		Converter: htmltomarkdown.NewConverter(),
	}
}

func TestExtractCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("extracts a local file to plain text", func(t *testing.T) {
		t.Parallel()

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := distillDeps(stdout, stderr)

		cmd := &main.ExtractCmd{Source: writeTestPage(t)}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Sample Article")
		assert.Contains(t, stdout.String(), "first paragraph of the sample article")
		assert.Empty(t, stderr.String())
	})

	t.Run("emits markdown with --markdown", func(t *testing.T) {
		t.Parallel()

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := distillDeps(stdout, stderr)

		cmd := &main.ExtractCmd{Source: writeTestPage(t), Markdown: true}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "# Sample Article")
	})

	t.Run("rejects markdown for engines without a tree", func(t *testing.T) {
		t.Parallel()

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := distillDeps(stdout, stderr)
		deps.Extractor = &mock.Extractor{
			ExtractFn: func(html string) (*pith.Result, error) {
				return &pith.Result{Candidate: pith.None, Heading: pith.None, Text: "text"}, nil
			},
		}

		cmd := &main.ExtractCmd{Source: writeTestPage(t), Markdown: true}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, pith.EINVALID, pith.ErrorCode(err))
	})

	t.Run("stores the extraction with --store", func(t *testing.T) {
		t.Parallel()

		var created *pith.Document
		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := distillDeps(stdout, stderr)
		deps.Documents = &mock.DocumentService{
			CreateDocumentFn: func(_ context.Context, doc *pith.Document) error {
				doc.ID = "doc-1"
				created = doc
				return nil
			},
		}

		path := writeTestPage(t)
		cmd := &main.ExtractCmd{Source: path, Store: true}
		err := cmd.Run(deps)

		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, path, created.Source)
		assert.Equal(t, "Sample Article", created.Title)
		assert.Contains(t, created.Content, "first paragraph")
	})

	t.Run("returns ENOTFOUND for a missing file", func(t *testing.T) {
		t.Parallel()

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := distillDeps(stdout, stderr)

		cmd := &main.ExtractCmd{Source: "/no/such/file.html"}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, pith.ENOTFOUND, pith.ErrorCode(err))
	})
}
