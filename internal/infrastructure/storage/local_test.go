package storage

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStore_SaveOpenRemove(t *testing.T) {
	root := t.TempDir()
	s := NewLocalStore(root)
	ctx := context.Background()

	key, n, err := s.Save(ctx, DocumentsPrefix, "id proof.pdf", strings.NewReader("hello"))
	require.NoError(t, err)
	assert.EqualValues(t, 5, n)
	assert.True(t, strings.HasPrefix(key, DocumentsPrefix+"/"), key)
	assert.True(t, strings.HasSuffix(key, "_id_proof.pdf"), key)

	rc, err := s.Open(ctx, key)
	require.NoError(t, err)
	b, err := io.ReadAll(rc)
	require.NoError(t, rc.Close())
	require.NoError(t, err)
	assert.Equal(t, "hello", string(b))

	require.NoError(t, s.Remove(ctx, key))
	_, err = os.Stat(filepath.Join(root, filepath.FromSlash(key)))
	assert.True(t, errors.Is(err, os.ErrNotExist))

	// removing twice is fine
	require.NoError(t, s.Remove(ctx, key))
}

func TestLocalStore_EmptyFileRejected(t *testing.T) {
	root := t.TempDir()
	s := NewLocalStore(root)

	_, _, err := s.Save(context.Background(), DocumentsPrefix, "a.txt", strings.NewReader(""))
	require.ErrorIs(t, err, ErrEmptyFile)

	entries, err := os.ReadDir(filepath.Join(root, DocumentsPrefix))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestLocalStore_KeysStayInsideRoot(t *testing.T) {
	root := t.TempDir()
	s := NewLocalStore(root)
	got := s.fullPath("../../etc/passwd")
	assert.True(t, strings.HasPrefix(got, root), got)
}

func TestSanitizeName(t *testing.T) {
	cases := map[string]string{
		"report.pdf":          "report.pdf",
		"../../secret.txt":    "secret.txt",
		`C:\docs\payslip.png`: "payslip.png",
		"my file (1).jpg":     "my_file__1_.jpg",
		"":                    "upload",
		"..":                  "upload",
	}
	for in, want := range cases {
		assert.Equal(t, want, sanitizeName(in), "input %q", in)
	}
}

func TestLocalStore_CanceledContext(t *testing.T) {
	s := NewLocalStore(t.TempDir())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := s.Save(ctx, DocumentsPrefix, "a.txt", strings.NewReader("x"))
	require.ErrorIs(t, err, context.Canceled)
}
