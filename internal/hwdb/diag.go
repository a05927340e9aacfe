package hwdb

import "fmt"

// Finding is a single validation failure. Findings are data, not errors:
// they never abort a run, they only make it fail at the very end.
type Finding struct {
	// File is the input file the finding belongs to. Empty when the
	// diagnostics were built without file context (unit tests, library use).
	File string

	// Message is the human-readable description of the failure.
	Message string
}

// String formats the finding the way it is printed to the console.
func (f Finding) String() string {
	if f.File == "" {
		return f.Message
	}
	return f.File + ": " + f.Message
}

// Diagnostics is an append-only collection of findings. Validators write
// into it and keep going; callers inspect it once at the end of a run.
//
// A Diagnostics value is not safe for concurrent use. Per-file processing
// uses one instance per file precisely so that files can be validated
// independently of each other.
type Diagnostics struct {
	file     string
	findings []Finding
}

// NewDiagnostics creates a sink whose findings are attributed to file.
// An empty file name is allowed and leaves findings unattributed.
func NewDiagnostics(file string) *Diagnostics {
	return &Diagnostics{file: file}
}

// Errorf records a new finding.
func (d *Diagnostics) Errorf(format string, args ...interface{}) {
	d.findings = append(d.findings, Finding{
		File:    d.file,
		Message: fmt.Sprintf(format, args...),
	})
}

// HasErrors reports whether any finding has been recorded.
func (d *Diagnostics) HasErrors() bool {
	return len(d.findings) > 0
}

// Findings returns the recorded findings in insertion order.
func (d *Diagnostics) Findings() []Finding {
	return d.findings
}

// Messages returns just the formatted texts, in insertion order.
func (d *Diagnostics) Messages() []string {
	out := make([]string, len(d.findings))
	for i, f := range d.findings {
		out[i] = f.Message
	}
	return out
}
