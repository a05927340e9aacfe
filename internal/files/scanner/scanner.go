// Package scanner discovers the hwdb files of a validation run.
package scanner

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/hwdbkit/hwdbcheck/pkg/hwdbcheck"
)

// Discover resolves the input file list. Explicit arguments are returned
// verbatim and in order; whether each one is readable is a per-file concern
// decided later, so that one missing file does not abort a batch. With no
// arguments the glob is expanded under dir and sorted, matching the
// conventional priority-prefix ordering of hwdb file names.
func Discover(args []string, dir, glob string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	pattern := filepath.Join(dir, glob)
	files, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("bad file glob %q: %w", pattern, hwdbcheck.ErrInvalidConfig)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: nothing matches %s", hwdbcheck.ErrNoInputFiles, pattern)
	}
	sort.Strings(files)
	return files, nil
}
