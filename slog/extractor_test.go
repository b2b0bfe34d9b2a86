package slog_test

import (
	"bytes"
	stdslog "log/slog"
	"testing"

	"github.com/ogniew/pith"
	"github.com/ogniew/pith/mock"
	pithslog "github.com/ogniew/pith/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("delegates and logs", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := stdslog.New(stdslog.NewTextHandler(&buf, nil))

		next := &mock.Extractor{
			ExtractFn: func(html string) (*pith.Result, error) {
				return &pith.Result{Title: "A Title", Text: "some text"}, nil
			},
		}

		e := pithslog.NewLoggingExtractor(next, logger)
		res, err := e.Extract("<html><body>x</body></html>")

		require.NoError(t, err)
		assert.Equal(t, "A Title", res.Title)
		assert.Contains(t, buf.String(), "msg=extract")
		assert.Contains(t, buf.String(), `title="A Title"`)
	})

	t.Run("logs errors from the wrapped extractor", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := stdslog.New(stdslog.NewTextHandler(&buf, nil))

		next := &mock.Extractor{
			ExtractFn: func(html string) (*pith.Result, error) {
				return nil, pith.Errorf(pith.EINVALID, "empty HTML input")
			},
		}

		e := pithslog.NewLoggingExtractor(next, logger)
		_, err := e.Extract("")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "empty HTML input")
	})
}
