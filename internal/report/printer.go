// Package report renders validation results: per-file summary lines and
// findings on the console, or a machine-readable JSON run report.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/hwdbkit/hwdbcheck/pkg/hwdbcheck"
)

// Printer writes run output to a single destination. Color is decided once
// at construction and applied uniformly.
type Printer struct {
	out   io.Writer
	color bool
}

// NewPrinter creates a printer for out. mode is the config/flag color
// setting: "always", "never", or anything else meaning auto-detect, which
// enables color only when out is a terminal.
func NewPrinter(out io.Writer, mode string) *Printer {
	return &Printer{out: out, color: colorEnabled(out, mode)}
}

func colorEnabled(out io.Writer, mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	f, ok := out.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// PrintFile writes the per-file summary line followed by the file's
// findings, one per line.
func (p *Printer) PrintFile(r hwdbcheck.FileReport) {
	summary := fmt.Sprintf("%s: %d match groups, %d matches, %d properties",
		r.Path, r.Groups, r.Matches, r.Properties)
	fmt.Fprintln(p.out, p.styled(summaryStyle, summary))

	for _, finding := range r.Findings {
		fmt.Fprintln(p.out, p.styled(findingStyle, finding))
	}
}

// PrintResult writes the run verdict line.
func (p *Printer) PrintResult(r *hwdbcheck.RunReport) {
	if r.OK {
		fmt.Fprintln(p.out, p.styled(okStyle,
			fmt.Sprintf("%d file(s) validated, no errors", len(r.Files))))
		return
	}
	fmt.Fprintln(p.out, p.styled(failStyle,
		fmt.Sprintf("%d file(s) validated, %d error(s)", len(r.Files), r.TotalFindings())))
}

// PrintJSON writes the whole run report as indented JSON, colorless by
// definition.
func (p *Printer) PrintJSON(r *hwdbcheck.RunReport) error {
	enc := json.NewEncoder(p.out)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

func (p *Printer) styled(style interface{ Render(...string) string }, s string) string {
	if !p.color {
		return s
	}
	return style.Render(s)
}
