package hwdb

import (
	"strings"

	"github.com/hwdbkit/hwdbcheck/pkg/hwdbcheck"
)

// wheelClickPairs lists the (A, B) property pairs where the presence of A
// requires B: horizontal wheel settings need their vertical counterpart,
// and click counts need a click angle.
var wheelClickPairs = [][2]string{
	{"MOUSE_WHEEL_CLICK_COUNT_HORIZONTAL", "MOUSE_WHEEL_CLICK_COUNT"},
	{"MOUSE_WHEEL_CLICK_ANGLE_HORIZONTAL", "MOUSE_WHEEL_CLICK_ANGLE"},
	{"MOUSE_WHEEL_CLICK_COUNT_HORIZONTAL", "MOUSE_WHEEL_CLICK_ANGLE_HORIZONTAL"},
	{"MOUSE_WHEEL_CLICK_COUNT", "MOUSE_WHEEL_CLICK_ANGLE"},
}

// CheckProperties runs the per-property value grammar and the semantic
// checks over every group. oracle may be nil, in which case keycode-name
// legitimacy is not checked. All findings go into diag; nothing aborts.
func CheckProperties(db *Database, oracle hwdbcheck.KeycodeOracle, diag *Diagnostics) {
	for _, group := range db.Groups {
		checkGroupProperties(group, oracle, diag)
	}
}

func checkGroupProperties(group MatchGroup, oracle hwdbcheck.KeycodeOracle, diag *Diagnostics) {
	seen := make(map[string]Value)

	for _, raw := range group.Properties {
		prop := stripComment(raw)
		name, rawValue, ok := strings.Cut(prop, "=")
		if !ok {
			diag.Errorf("failed to parse %q", prop)
			continue
		}
		value, err := ParseValue(name, rawValue)
		if err != nil {
			diag.Errorf("failed to parse %q: %v", prop, err)
			continue
		}
		if _, dup := seen[name]; dup {
			diag.Errorf("property %s is duplicated", name)
		}
		// Last value wins for the cross-property checks below.
		seen[name] = value

		switch v := value.(type) {
		case DPIList:
			checkOneDefault(prop, v, diag)
		case MountMatrix:
			checkMountMatrix(prop, v, diag)
		case Keycode:
			checkKeycode(v, oracle, diag)
		}
	}

	for _, pair := range wheelClickPairs {
		if _, a := seen[pair[0]]; !a {
			continue
		}
		if _, b := seen[pair[1]]; !b {
			diag.Errorf("%s requires %s to be specified", pair[0], pair[1])
		}
	}
}

// stripComment removes a trailing "#comment" and any whitespace before it.
func stripComment(raw string) string {
	if i := strings.IndexByte(raw, '#'); i >= 0 {
		raw = raw[:i]
	}
	return strings.TrimRight(raw, " \t")
}

// checkOneDefault flags a DPI list carrying more than one starred entry.
func checkOneDefault(prop string, list DPIList, diag *Diagnostics) {
	defaults := 0
	for _, s := range list {
		if s.Default {
			defaults++
		}
	}
	if defaults > 1 {
		diag.Errorf("more than one star entry: %q", prop)
	}
}

// checkMountMatrix flags a matrix with an all-zero row: a transform that
// collapses an axis cannot describe a sensor orientation. Only the first
// offending axis is named.
func checkMountMatrix(prop string, m MountMatrix, diag *Diagnostics) {
	axes := [3]string{"x", "y", "z"}
	for i, row := range m {
		max := 0.0
		for _, v := range row {
			if v < 0 {
				v = -v
			}
			if v > max {
				max = v
			}
		}
		if max == 0 {
			diag.Errorf("mount matrix is all zero in %s row: %q", axes[i], prop)
			return
		}
	}
}

// checkKeycode verifies a bare key name against the keycode oracle. The
// disable sentinel and bang-prefixed names are exempt, and a missing
// oracle skips the check entirely.
func checkKeycode(kc Keycode, oracle hwdbcheck.KeycodeOracle, diag *Diagnostics) {
	if oracle == nil || kc.Disable || kc.Bang {
		return
	}
	key := "KEY_" + strings.ToUpper(kc.Name)
	if oracle.IsKnownKeycode(key) || oracle.IsKnownKeycode(strings.ToUpper(kc.Name)) {
		return
	}
	// Keys added in kernel 5.5 that predate most shipped keycode tables.
	if strings.Contains(key, "KBD_LCD_MENU") {
		return
	}
	diag.Errorf("keycode %s unknown", key)
}
