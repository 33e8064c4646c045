package output

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/teranos/dartpoet/errors"
)

// CheckResult holds the result of comparing freshly generated files with
// the ones on disk.
type CheckResult struct {
	UpToDate    bool
	Differences []Difference
}

// Difference describes one stale file.
type Difference struct {
	// File is the path relative to the compared directories
	File string
	// Missing is set when the file does not exist yet
	Missing bool
	// Diff is a unified diff from the existing to the generated file
	Diff string
}

// Files returns the names of the stale files.
func (r *CheckResult) Files() []string {
	files := make([]string, 0, len(r.Differences))
	for _, d := range r.Differences {
		files = append(files, d.File)
	}
	return files
}

// CompareDirectories compares every file in generatedDir with the file of
// the same relative path in existingDir. Files that only exist in
// existingDir are not reported: they may be written by other tools.
func CompareDirectories(generatedDir, existingDir string) (*CheckResult, error) {
	var diffs []Difference

	err := filepath.WalkDir(generatedDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		rel, err := filepath.Rel(generatedDir, path)
		if err != nil {
			return err
		}

		generated, err := os.ReadFile(path)
		if err != nil {
			return errors.Wrapf(err, "failed to read %s", path)
		}
		existingPath := filepath.Join(existingDir, rel)
		existing, err := os.ReadFile(existingPath)
		if os.IsNotExist(err) {
			diffs = append(diffs, Difference{File: rel, Missing: true})
			return nil
		}
		if err != nil {
			return errors.Wrapf(err, "failed to read %s", existingPath)
		}

		if bytes.Equal(existing, generated) {
			return nil
		}
		diff, err := unifiedDiff(rel, existing, generated)
		if err != nil {
			return err
		}
		diffs = append(diffs, Difference{File: rel, Diff: diff})
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to compare %s with %s", generatedDir, existingDir)
	}

	sort.Slice(diffs, func(i, j int) bool { return diffs[i].File < diffs[j].File })
	return &CheckResult{
		UpToDate:    len(diffs) == 0,
		Differences: diffs,
	}, nil
}

func unifiedDiff(name string, existing, generated []byte) (string, error) {
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(existing)),
		B:        difflib.SplitLines(string(generated)),
		FromFile: filepath.ToSlash(filepath.Join("a", name)),
		ToFile:   filepath.ToSlash(filepath.Join("b", name)),
		Context:  3,
	})
	if err != nil {
		return "", errors.Wrapf(err, "failed to diff %s", name)
	}
	return diff, nil
}
