// Package goquery extracts page metadata with CSS selectors. The heuristic
// pipeline only needs the declared <title>; this package pulls the richer
// head metadata used to label stored documents.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/ogniew/pith"
)

// Meta is the head metadata of a page.
type Meta struct {
	// Title is the <title> text, og:title when the <title> is absent.
	Title string

	// OGTitle is the Open Graph title, often the bare headline without
	// the site name suffix.
	OGTitle string

	// Description is the meta description or og:description.
	Description string

	// Canonical is the canonical URL when declared and valid.
	Canonical string
}

// ExtractMeta parses the page head and returns its metadata.
func ExtractMeta(html string) (*Meta, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, pith.Errorf(pith.EINVALID, "failed to parse HTML: %v", err)
	}

	m := &Meta{
		Title:       strings.TrimSpace(doc.Find("head title").First().Text()),
		OGTitle:     metaContent(doc, `meta[property="og:title"]`),
		Description: metaContent(doc, `meta[name="description"]`),
	}

	if m.Title == "" {
		m.Title = m.OGTitle
	}
	if m.Description == "" {
		m.Description = metaContent(doc, `meta[property="og:description"]`)
	}

	if href, ok := doc.Find(`link[rel="canonical"]`).First().Attr("href"); ok {
		href = strings.TrimSpace(href)
		if u, err := url.Parse(href); err == nil && u.IsAbs() {
			m.Canonical = href
		}
	}

	return m, nil
}

func metaContent(doc *goquery.Document, selector string) string {
	content, _ := doc.Find(selector).First().Attr("content")
	return strings.TrimSpace(content)
}
