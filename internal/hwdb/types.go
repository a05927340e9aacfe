package hwdb

// Database is the parsed form of one hwdb file: an ordered list of match
// groups, exactly as they appear in the file. It is read-only after parsing.
type Database struct {
	Groups []MatchGroup
}

// MatchGroup is one match-block plus its property-block. The structural
// grammar guarantees both lists are non-empty; a group with zero matches or
// zero properties never parses.
type MatchGroup struct {
	// Matches holds the raw match patterns, e.g. "mouse:usb:v045ep0040:*"
	// or "usb:v04F3p2B7C*".
	Matches []string

	// Properties holds the raw property lines with the single leading
	// space removed but any trailing "#comment" retained, e.g.
	// "MOUSE_DPI=1000@125 # factory default".
	Properties []string
}

// NumMatches returns the total match count across all groups.
func (db *Database) NumMatches() int {
	n := 0
	for _, g := range db.Groups {
		n += len(g.Matches)
	}
	return n
}

// NumProperties returns the total property count across all groups.
func (db *Database) NumProperties() int {
	n := 0
	for _, g := range db.Groups {
		n += len(g.Properties)
	}
	return n
}

// AllMatches returns every match pattern in the database in file order.
func (db *Database) AllMatches() []string {
	out := make([]string, 0, db.NumMatches())
	for _, g := range db.Groups {
		out = append(out, g.Matches...)
	}
	return out
}
