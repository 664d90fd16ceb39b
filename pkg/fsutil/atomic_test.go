package fsutil_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/yaklabco/gosmell/pkg/fsutil"
)

func TestWriteAtomic(t *testing.T) {
	t.Parallel()

	t.Run("writes new file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "reek.html")
		content := []byte("<html></html>")

		err := fsutil.WriteAtomic(context.Background(), path, content, 0644)
		if err != nil {
			t.Fatalf("WriteAtomic() error = %v", err)
		}

		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read back: %v", err)
		}
		if string(got) != string(content) {
			t.Errorf("content = %q, want %q", got, content)
		}
	})

	t.Run("overwrites existing file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "reek.html")
		if err := os.WriteFile(path, []byte("original content that is longer"), 0644); err != nil {
			t.Fatalf("setup: %v", err)
		}

		err := fsutil.WriteAtomic(context.Background(), path, []byte("new"), 0644)
		if err != nil {
			t.Fatalf("WriteAtomic() error = %v", err)
		}

		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read back: %v", err)
		}
		if string(got) != "new" {
			t.Errorf("content = %q, want %q", got, "new")
		}
	})

	t.Run("applies specified mode", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "reek.html")

		if err := fsutil.WriteAtomic(context.Background(), path, []byte("x"), 0600); err != nil {
			t.Fatalf("WriteAtomic() error = %v", err)
		}

		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("stat: %v", err)
		}
		if info.Mode().Perm() != 0600 {
			t.Errorf("mode = %o, want %o", info.Mode().Perm(), 0600)
		}
	})

	t.Run("zero mode uses default", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "reek.html")

		if err := fsutil.WriteAtomic(context.Background(), path, []byte("x"), 0); err != nil {
			t.Fatalf("WriteAtomic() error = %v", err)
		}

		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("stat: %v", err)
		}
		if info.Mode().Perm() != fsutil.DefaultFileMode {
			t.Errorf("mode = %o, want %o", info.Mode().Perm(), fsutil.DefaultFileMode)
		}
	})

	t.Run("respects cancelled context", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "reek.html")

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := fsutil.WriteAtomic(ctx, path, []byte("x"), 0644)
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("WriteAtomic() error = %v, want context.Canceled", err)
		}
		if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
			t.Errorf("file should not exist after cancelled write")
		}
	})

	t.Run("fails for missing directory", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "missing", "reek.html")

		if err := fsutil.WriteAtomic(context.Background(), path, []byte("x"), 0644); err == nil {
			t.Fatal("WriteAtomic() expected error for missing directory")
		}
	})
}

func TestWriteAtomicFunc(t *testing.T) {
	t.Parallel()

	t.Run("streams content", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "reek.html")

		err := fsutil.WriteAtomicFunc(context.Background(), path, 0, func(w io.Writer) error {
			for i := range 3 {
				if _, err := fmt.Fprintf(w, "line %d\n", i); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			t.Fatalf("WriteAtomicFunc() error = %v", err)
		}

		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read back: %v", err)
		}
		if want := "line 0\nline 1\nline 2\n"; string(got) != want {
			t.Errorf("content = %q, want %q", got, want)
		}
	})

	t.Run("write error keeps original and removes temp file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "reek.html")
		if err := os.WriteFile(path, []byte("original"), 0644); err != nil {
			t.Fatalf("setup: %v", err)
		}

		errBoom := errors.New("boom")
		err := fsutil.WriteAtomicFunc(context.Background(), path, 0, func(w io.Writer) error {
			_, _ = io.WriteString(w, "partial")
			return errBoom
		})
		if !errors.Is(err, errBoom) {
			t.Fatalf("WriteAtomicFunc() error = %v, want %v", err, errBoom)
		}

		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read back: %v", err)
		}
		if string(got) != "original" {
			t.Errorf("content = %q, want original content preserved", got)
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatalf("read dir: %v", err)
		}
		if len(entries) != 1 {
			t.Errorf("dir has %d entries, want only the target file", len(entries))
		}
	})
}
