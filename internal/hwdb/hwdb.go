// Package hwdb validates the udev hwdb source format: match patterns
// grouped with NAME=VALUE properties, an outer line-structure grammar and
// an inner per-property value grammar, plus the semantic checks neither
// grammar can express on its own.
package hwdb

import (
	"os"

	"github.com/hwdbkit/hwdbcheck/pkg/hwdbcheck"
)

// CheckFile runs the full validation pipeline over one file and returns
// its report. A file that cannot be read or structurally parsed yields an
// empty database; the degenerate-file check then flags it as having no
// matches or properties, in addition to the read/parse finding itself.
// Errors never propagate: everything ends up as findings in the report.
func CheckFile(path string, oracle hwdbcheck.KeycodeOracle) hwdbcheck.FileReport {
	diag := NewDiagnostics(path)

	db := &Database{}
	data, err := os.ReadFile(path)
	if err != nil {
		diag.Errorf("cannot read %s: %v", path, err)
	} else if parsed, perr := ParseStructure(string(data)); perr != nil {
		diag.Errorf("cannot parse %s: %v", path, perr)
	} else {
		db = parsed
	}

	report := hwdbcheck.FileReport{
		Path:       path,
		Groups:     len(db.Groups),
		Matches:    db.NumMatches(),
		Properties: db.NumProperties(),
	}

	if report.Matches == 0 || report.Properties == 0 {
		diag.Errorf("%s: no matches or props", path)
	}

	CheckMatches(db, diag)
	CheckProperties(db, oracle, diag)

	report.Findings = diag.Messages()
	return report
}
