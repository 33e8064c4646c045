// Package output renders Dart files and puts the result on disk or stdout.
//
// Files are independent, so Render uses one goroutine (and one Writer) per
// file. The spec.File trees are read-only after Build and safe to share.
package output

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/teranos/dartpoet/config"
	"github.com/teranos/dartpoet/dart/spec"
	"github.com/teranos/dartpoet/errors"
	"github.com/teranos/dartpoet/logger"
)

// Rendered is the source text of one file.
type Rendered struct {
	Name    string
	Content []byte
}

// Render renders files concurrently. The result keeps the order of files.
func Render(ctx context.Context, files []*spec.File) ([]Rendered, error) {
	seen := make(map[string]bool, len(files))
	for _, f := range files {
		if seen[f.Name()] {
			return nil, errors.WithHint(
				errors.Newf("duplicate output file %s", f.Name()),
				"two inputs produce the same file name, rename one of them")
		}
		seen[f.Name()] = true
	}

	out := make([]Rendered, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, f := range files {
		i, f := i, f
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			var buf bytes.Buffer
			if _, err := f.WriteTo(&buf); err != nil {
				return errors.Wrapf(err, "failed to render %s", f.Name())
			}
			out[i] = Rendered{Name: f.Name(), Content: buf.Bytes()}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// Write stores rendered files in dir, creating it if needed, and returns the
// written paths.
func Write(dir string, rendered []Rendered) ([]string, error) {
	log := logger.ComponentLogger("output")

	if err := os.MkdirAll(dir, config.DefaultDirPermissions); err != nil {
		return nil, errors.Wrapf(err, "failed to create output directory %s", dir)
	}
	paths := make([]string, 0, len(rendered))
	for _, r := range rendered {
		path := filepath.Join(dir, r.Name)
		if err := os.WriteFile(path, r.Content, config.DefaultFilePermissions); err != nil {
			return nil, errors.Wrapf(err, "failed to write %s", path)
		}
		log.Debugw("Wrote file", logger.FieldFile, path, "bytes", len(r.Content))
		paths = append(paths, path)
	}
	return paths, nil
}

// Print writes rendered files to w. With more than one file each is
// preceded by a "// File:" line.
func Print(w io.Writer, rendered []Rendered) error {
	for i, r := range rendered {
		if len(rendered) > 1 {
			if i > 0 {
				if _, err := fmt.Fprintln(w); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintf(w, "// File: %s\n", r.Name); err != nil {
				return err
			}
		}
		if _, err := w.Write(r.Content); err != nil {
			return errors.Wrapf(err, "failed to print %s", r.Name)
		}
	}
	return nil
}
