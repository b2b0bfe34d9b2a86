package main

import (
	"context"
	"fmt"

	"github.com/ogniew/pith"
	"github.com/ogniew/pith/goquery"
	pithhtml "github.com/ogniew/pith/html"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	ctx := deps.Ctx
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	raw, err := loadSource(ctx, deps, c.Source)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pith.ErrorMessage(err))
		return err
	}

	res, err := deps.Extractor.Extract(raw)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pith.ErrorMessage(err))
		return err
	}

	title := res.Title
	if title == "" {
		// Engines miss the title on pages that only declare og:title.
		if m, metaErr := goquery.ExtractMeta(raw); metaErr == nil {
			title = m.Title
		}
	}

	output := res.Text
	if c.Markdown {
		output, err = renderMarkdown(deps, res)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", pith.ErrorMessage(err))
			return err
		}
	}

	if c.Store {
		doc := &pith.Document{
			Source:  c.Source,
			Title:   title,
			Content: output,
		}
		if err := deps.Documents.CreateDocument(ctx, doc); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", pith.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stderr, "stored %s (%d words)\n", doc.ID, doc.Words)
	}

	if title != "" {
		fmt.Fprintf(deps.Stdout, "%s\n\n", title)
	}
	fmt.Fprintln(deps.Stdout, output)
	return nil
}

// renderMarkdown converts the candidate subtree to Markdown. Only the
// native engine exposes a tree to render.
func renderMarkdown(deps *Dependencies, res *pith.Result) (string, error) {
	if res.Tree == nil {
		return "", pith.Errorf(pith.EINVALID, "markdown output requires the distill engine")
	}
	candHTML, err := pithhtml.RenderCandidate(res)
	if err != nil {
		return "", err
	}
	return deps.Converter.Convert(candHTML)
}
