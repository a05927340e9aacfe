// Package keycodes builds keycode-name tables for the hwdbcheck.KeycodeOracle
// capability. The canonical source is the kernel's input-event-codes.h
// header; a plain one-name-per-line file works too, which keeps tests and
// stripped-down CI images independent of the kernel headers.
package keycodes

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
)

// defineRe captures the identifier of a C macro definition such as
// "#define KEY_VOLUMEUP 115".
var defineRe = regexp.MustCompile(`^#\s*define\s+([A-Za-z_][A-Za-z0-9_]+)\s`)

// nameRe is the shape of a bare keycode name in list files.
var nameRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Set is a keycode-name table. It implements hwdbcheck.KeycodeOracle.
type Set map[string]struct{}

// IsKnownKeycode reports whether name is in the table.
func (s Set) IsKnownKeycode(name string) bool {
	_, ok := s[name]
	return ok
}

// Len returns the number of names in the table.
func (s Set) Len() int {
	return len(s)
}

// Load reads a keycode table from path. Both the kernel header format
// (#define lines) and plain name-per-line lists are accepted; the two can
// even be mixed, since a line is classified per line.
func Load(path string) (Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open keycode table: %w", err)
	}
	defer f.Close()

	set, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read keycode table %s: %w", path, err)
	}
	if len(set) == 0 {
		return nil, fmt.Errorf("keycode table %s contains no names", path)
	}
	return set, nil
}

// Parse builds a Set from r. Comment lines (// or #, except #define) and
// blank lines are ignored; anything else must be a bare keycode name.
func Parse(r io.Reader) (Set, error) {
	set := make(Set)
	scanner := bufio.NewScanner(r)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "//") || strings.HasPrefix(line, "/*") || strings.HasPrefix(line, "*") {
			continue
		}
		if strings.HasPrefix(line, "#") {
			if m := defineRe.FindStringSubmatch(line); m != nil {
				// Header guards and helper macros live in the same
				// file; only event code identifiers matter.
				if isEventCodeName(m[1]) {
					set[m[1]] = struct{}{}
				}
			}
			continue
		}
		if !nameRe.MatchString(line) {
			return nil, fmt.Errorf("line %d: invalid keycode name %q", lineNum, line)
		}
		set[line] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return set, nil
}

// isEventCodeName filters macro identifiers down to the input event code
// families the hwdb format can reference.
func isEventCodeName(name string) bool {
	for _, prefix := range []string{"KEY_", "BTN_", "ABS_", "REL_", "SW_", "MSC_", "LED_"} {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}
