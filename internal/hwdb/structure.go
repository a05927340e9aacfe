package hwdb

import (
	"fmt"
	"regexp"
	"strings"
)

// typeConnectors is the fixed table of typed-match categories and the
// connectors each one allows. A line like "mouse:usb:v045ep0040:*" is a
// typed match; "mouse:serial:..." is not a match line at all.
var typeConnectors = map[string][]string{
	"mouse":    {"usb", "bluetooth", "ps2", "*"},
	"evdev":    {"name", "atkbd", "input"},
	"fb":       {"pci"},
	"id-input": {"modalias"},
	"touchpad": {"i8042", "rmi", "bluetooth", "usb"},
	"joystick": {"i8042", "rmi", "bluetooth", "usb"},
	"keyboard": {"name"},
	"sensor":   {"modalias"},
}

// generalMatches is the fixed set of keys that set general properties on a
// device, e.g. "usb:v04F3p2B7C*".
var generalMatches = map[string]bool{
	"acpi":      true,
	"bluetooth": true,
	"usb":       true,
	"pci":       true,
	"sdio":      true,
	"vmbus":     true,
	"OUI":       true,
}

// propertyLineRe matches a full property line: exactly one leading space,
// an uppercase tag, '=', an optional value body over the hwdb value
// alphabet, and an optional end-of-line comment.
var propertyLineRe = regexp.MustCompile(`^ [A-Z][A-Z0-9_]*=[0-9A-Za-z_=:@*.!;,"/ -]*(#.*)?$`)

// StructuralError reports that a file does not conform to the outer hwdb
// grammar. It aborts group extraction for that file; no partial group is
// ever emitted.
type StructuralError struct {
	Line int
	Msg  string
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

func structuralErr(line int, format string, args ...interface{}) *StructuralError {
	return &StructuralError{Line: line, Msg: fmt.Sprintf(format, args...)}
}

// ParseStructure splits one hwdb file into its ordered match groups.
//
// The grammar is strictly line oriented: a group is one or more match lines
// (column-0 comment lines interleaved and discarded), then one or more
// property lines (one-space comment lines interleaved and discarded), then
// a blank line or end of file. A run of column-0 comment lines terminated
// by a blank line, where a group would start, is discarded entirely.
// Anything else is a structural error.
func ParseStructure(text string) (*Database, error) {
	lines := strings.Split(text, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1] // trailing newline
	}

	db := &Database{}
	i := 0
	for i < len(lines) {
		line := lines[i]
		if line == "" {
			return nil, structuralErr(i+1, "unexpected empty line")
		}
		if isCommentLine(line) {
			j := i
			for j < len(lines) && isCommentLine(lines[j]) {
				j++
			}
			if j >= len(lines) {
				return nil, structuralErr(j, "expected match line after comments")
			}
			if lines[j] == "" {
				// Standalone comment block, not part of any group.
				i = j + 1
				continue
			}
			// Comments leading into a group; the group parser skips them.
		}
		group, next, err := parseGroup(lines, i)
		if err != nil {
			return nil, err
		}
		db.Groups = append(db.Groups, group)
		i = next
	}
	return db, nil
}

// parseGroup consumes one match-block + property-block + terminator
// starting at lines[start]. It returns the group and the index of the first
// line after it.
func parseGroup(lines []string, start int) (MatchGroup, int, error) {
	var g MatchGroup
	i := start

	for i < len(lines) {
		line := lines[i]
		if isCommentLine(line) {
			i++
			continue
		}
		if isMatchLine(line) {
			g.Matches = append(g.Matches, line)
			i++
			continue
		}
		break
	}
	if len(g.Matches) == 0 {
		return g, 0, structuralErr(i+1, "expected match line")
	}

	for i < len(lines) {
		line := lines[i]
		if isPropertyComment(line) {
			i++
			continue
		}
		if propertyLineRe.MatchString(line) {
			g.Properties = append(g.Properties, line[1:])
			i++
			continue
		}
		break
	}
	if len(g.Properties) == 0 {
		return g, 0, structuralErr(i+1, "expected property line")
	}

	if i < len(lines) {
		if lines[i] != "" {
			return g, 0, structuralErr(i+1, "expected empty line after group, got %q", lines[i])
		}
		i++
	}
	return g, i, nil
}

func isCommentLine(line string) bool {
	return strings.HasPrefix(line, "#")
}

func isPropertyComment(line string) bool {
	return strings.HasPrefix(line, " #")
}

// isMatchLine reports whether line is a typed or general match pattern.
func isMatchLine(line string) bool {
	head, rest, ok := strings.Cut(line, ":")
	if !ok {
		return false
	}
	if conns, typed := typeConnectors[head]; typed {
		conn, body, hasBody := strings.Cut(rest, ":")
		if !hasBody {
			return false
		}
		for _, c := range conns {
			if c == conn {
				return isMatchBody(body)
			}
		}
		return false
	}
	if generalMatches[head] {
		return isMatchBody(rest)
	}
	return false
}

// isMatchBody accepts a non-empty pattern body of printable ASCII, spaces
// and the registered-trademark sign (which appears in real device names).
func isMatchBody(body string) bool {
	if body == "" {
		return false
	}
	for _, r := range body {
		if r == ' ' || r == '®' || (r >= '!' && r <= '~') {
			continue
		}
		return false
	}
	return true
}
