package hwdbcheck

// FileReport holds the validation outcome for one hwdb file.
type FileReport struct {
	// Path is the file as given on the command line or found by the glob.
	Path string `json:"path"`

	// Groups, Matches and Properties are the structural counts printed in
	// the per-file summary line. All zero when the file failed to parse.
	Groups     int `json:"groups"`
	Matches    int `json:"matches"`
	Properties int `json:"properties"`

	// Findings lists every validation failure for this file, in the order
	// it was discovered.
	Findings []string `json:"findings"`
}

// Clean reports whether the file produced no findings.
func (r *FileReport) Clean() bool {
	return len(r.Findings) == 0
}

// RunReport aggregates the per-file reports of one validation run. It is
// the shape emitted by --json.
type RunReport struct {
	// RunID uniquely identifies this invocation so CI systems can
	// correlate the report with logs.
	RunID string `json:"run_id"`

	// Files holds one report per input file, in processing order.
	Files []FileReport `json:"files"`

	// OK is false as soon as any file has a finding.
	OK bool `json:"ok"`
}

// TotalFindings counts findings across all files.
func (r *RunReport) TotalFindings() int {
	n := 0
	for _, f := range r.Files {
		n += len(f.Findings)
	}
	return n
}
