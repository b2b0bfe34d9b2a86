package main

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/ogniew/pith"
)

// loadSource resolves a source argument to HTML: a URL is fetched, "-"
// reads stdin, anything else is treated as a local file path.
func loadSource(ctx context.Context, deps *Dependencies, source string) (string, error) {
	switch {
	case strings.HasPrefix(source, "http://"), strings.HasPrefix(source, "https://"):
		return deps.Fetcher.Fetch(ctx, source)

	case source == "-":
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}
		return string(b), nil

	default:
		b, err := os.ReadFile(source)
		if os.IsNotExist(err) {
			return "", pith.Errorf(pith.ENOTFOUND, "no such file: %s", source)
		}
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
}
