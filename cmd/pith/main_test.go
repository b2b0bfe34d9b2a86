package main_test

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	main "github.com/ogniew/pith/cmd/pith"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain_Run(t *testing.T) {
	t.Parallel()

	t.Run("extracts end to end", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		m.DBPath = filepath.Join(t.TempDir(), "pith.db")

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		err := m.Run(context.Background(), []string{"extract", writeTestPage(t)}, stdout, stderr)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Sample Article")
		assert.Contains(t, stdout.String(), "first paragraph of the sample article")
	})

	t.Run("stores and finds a document", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		m.DBPath = filepath.Join(t.TempDir(), "pith.db")

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		err := m.Run(context.Background(), []string{"extract", "--store", writeTestPage(t)}, stdout, stderr)

		require.NoError(t, err)
		assert.Contains(t, stderr.String(), "stored")
	})

	t.Run("inspect dumps XML", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		m.DBPath = filepath.Join(t.TempDir(), "pith.db")

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		err := m.Run(context.Background(), []string{"inspect", writeTestPage(t)}, stdout, stderr)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), `candidate="true"`)
	})

	t.Run("returns error without a command", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		m.DBPath = filepath.Join(t.TempDir(), "pith.db")

		err := m.Run(context.Background(), nil, &bytes.Buffer{}, &bytes.Buffer{})
		require.Error(t, err)
	})

	t.Run("help returns nil", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		m.DBPath = filepath.Join(t.TempDir(), "pith.db")

		err := m.Run(context.Background(), []string{"--help"}, &bytes.Buffer{}, &bytes.Buffer{})
		require.NoError(t, err)
	})

	t.Run("rejects an unknown engine", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		m.DBPath = filepath.Join(t.TempDir(), "pith.db")

		err := m.Run(context.Background(), []string{"extract", "--engine", "magic", "page.html"}, &bytes.Buffer{}, &bytes.Buffer{})
		require.Error(t, err)
	})
}
