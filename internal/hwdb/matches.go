package hwdb

import (
	"regexp"
	"sort"
	"strings"
)

// hexIDBodies holds the structural sub-grammars for the two match prefixes
// whose bodies carry vendor/product hex IDs. This is a partial check; the
// remaining prefixes carry free-form modalias or name patterns. The
// expressions are anchored at the start only: they validate the leading ID
// fields and leave the rest of the pattern alone.
var hexIDBodies = map[string]*regexp.Regexp{
	"usb": regexp.MustCompile(`^v[0-9A-F]{4}(p[0-9A-F]{4})?`),
	"pci": regexp.MustCompile(`^v[0-9A-F]{8}(d[0-9A-F]{8})?`),
}

// CheckMatches validates every match pattern in the database and records
// findings in diag. The duplicate check is global: two identical patterns
// are an error no matter which groups they came from, because the later
// one silently shadows or repeats the earlier one.
func CheckMatches(db *Database, diag *Diagnostics) {
	matches := db.AllMatches()

	for _, match := range matches {
		prefix, rest, _ := strings.Cut(match, ":")
		re, ok := hexIDBodies[prefix]
		if !ok {
			continue
		}
		if !re.MatchString(rest) {
			diag.Errorf("pattern %q is invalid: expected %s hex ID fields", rest, prefix)
			continue
		}
		if !strings.HasSuffix(rest, "*") && !strings.HasSuffix(rest, ":") {
			diag.Errorf("pattern %s does not end with \"*\" or \":\"", match)
		}
	}

	sorted := make([]string, len(matches))
	copy(sorted, matches)
	sort.Strings(sorted)
	for i := 1; i < len(sorted); i++ {
		if sorted[i] == sorted[i-1] {
			diag.Errorf("match %q is duplicated", sorted[i])
		}
	}
}
