package main

import (
	"context"
	"fmt"
	"net/url"
	"sync"

	"github.com/ogniew/pith"
	"github.com/ogniew/pith/bloom"
	"github.com/ogniew/pith/goquery"
	"golang.org/x/sync/errgroup"
)

// Run executes the batch command: fetch every URL, extract, skip content
// already seen in this run, and store the rest.
func (c *BatchCmd) Run(deps *Dependencies) error {
	g, ctx := errgroup.WithContext(deps.Ctx)
	g.SetLimit(c.Concurrency)

	var mu sync.Mutex // guards seen, the counters, and output interleaving
	seen := bloom.NewSeenFilter(uint(len(c.URLs))*2+64, 0.001)
	var stored, skipped, failed int

	for _, u := range c.URLs {
		g.Go(func() error {
			if err := c.one(deps, ctx, u, seen, &mu, &stored, &skipped); err != nil {
				mu.Lock()
				failed++
				fmt.Fprintf(deps.Stderr, "error: %s: %s\n", u, pith.ErrorMessage(err))
				mu.Unlock()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "done: %d stored, %d duplicates, %d failed\n", stored, skipped, failed)
	if failed == len(c.URLs) && failed > 0 {
		return pith.Errorf(pith.EINTERNAL, "all %d fetches failed", failed)
	}
	return nil
}

func (c *BatchCmd) one(deps *Dependencies, ctx context.Context, rawURL string, seen *bloom.SeenFilter, mu *sync.Mutex, stored, skipped *int) error {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return pith.Errorf(pith.EINVALID, "invalid URL %q", rawURL)
	}

	if err := deps.Limiter.Wait(ctx, parsed.Host); err != nil {
		return err
	}

	raw, err := deps.Fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return err
	}

	res, err := deps.Extractor.Extract(raw)
	if err != nil {
		return err
	}

	title := res.Title
	if title == "" {
		if m, metaErr := goquery.ExtractMeta(raw); metaErr == nil {
			title = m.Title
		}
	}

	mu.Lock()
	dup := seen.Seen(res.Text)
	if !dup {
		seen.Remember(res.Text)
	}
	mu.Unlock()

	if dup {
		mu.Lock()
		*skipped++
		fmt.Fprintf(deps.Stdout, "duplicate %s\n", rawURL)
		mu.Unlock()
		return nil
	}

	doc := &pith.Document{
		Source:  rawURL,
		Title:   title,
		Content: res.Text,
	}
	if err := deps.Documents.CreateDocument(ctx, doc); err != nil {
		return err
	}
	if deps.Writer != nil {
		if err := deps.Writer.WriteDocument(ctx, doc); err != nil {
			return err
		}
	}

	mu.Lock()
	*stored++
	fmt.Fprintf(deps.Stdout, "stored %s (%d words)\n", rawURL, doc.Words)
	mu.Unlock()
	return nil
}
