package hwdb

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Value is the closed union of parsed property values. Each recognized
// property name maps to exactly one concrete type, so the semantic
// validator can type-switch instead of re-inspecting raw strings.
type Value interface {
	isValue()
}

// Flag is a boolean property written as 0 or 1 (the ID_INPUT_* family).
type Flag bool

// Integer is an unsigned decimal property such as MOUSE_WHEEL_CLICK_ANGLE.
type Integer int64

// Real is an unsigned decimal property with an optional fraction, such as
// POINTINGSTICK_CONST_ACCEL.
type Real float64

// Enum is a value drawn from a small fixed set, e.g. internal/external.
type Enum string

// Token is a free-form XKB layout/variant/model token, possibly empty.
type Token string

// Literal is a property whose only legal value is one fixed string, e.g.
// KEYBOARD_LED_NUMLOCK=0.
type Literal string

// DPISetting is one selectable mouse resolution profile.
type DPISetting struct {
	Default bool // marked with a leading '*'
	DPI     int
	Hz      int
}

// DPIList is the value of MOUSE_DPI: one or more profiles.
type DPIList []DPISetting

// MountMatrix is the value of ACCEL_MOUNT_MATRIX: a 3x3 orientation
// transform, rows x, y, z.
type MountMatrix [3][3]float64

// Keycode is the value of a KEYBOARD_KEY_* property. Disable is the bare
// "!" sentinel; Bang records a "!" prefix in front of a key name, which
// exempts the name from keycode-oracle checking.
type Keycode struct {
	Disable bool
	Bang    bool
	Name    string
}

// AbsSettings is the value of an EVDEV_ABS_* property: the numeric fields
// of a colon-joined axis override. Empty segments are legal in the format
// and simply absent here.
type AbsSettings []int64

func (Flag) isValue()        {}
func (Integer) isValue()     {}
func (Real) isValue()        {}
func (Enum) isValue()        {}
func (Token) isValue()       {}
func (Literal) isValue()     {}
func (DPIList) isValue()     {}
func (MountMatrix) isValue() {}
func (Keycode) isValue()     {}
func (AbsSettings) isValue() {}

type valueParser func(raw string) (Value, error)

// fixedProperties maps every recognized fixed property name to its value
// grammar. The table is exhaustive: a name that is neither here nor in one
// of the two pattern families below does not parse.
var fixedProperties = map[string]valueParser{
	"MOUSE_DPI":                           parseDPIList,
	"MOUSE_WHEEL_CLICK_ANGLE":             parseInteger,
	"MOUSE_WHEEL_CLICK_ANGLE_HORIZONTAL":  parseInteger,
	"MOUSE_WHEEL_CLICK_COUNT":             parseInteger,
	"MOUSE_WHEEL_CLICK_COUNT_HORIZONTAL":  parseInteger,
	"ID_AUTOSUSPEND":                      parseFlag,
	"ID_INPUT":                            parseFlag,
	"ID_INPUT_ACCELEROMETER":              parseFlag,
	"ID_INPUT_JOYSTICK":                   parseFlag,
	"ID_INPUT_KEY":                        parseFlag,
	"ID_INPUT_KEYBOARD":                   parseFlag,
	"ID_INPUT_MOUSE":                      parseFlag,
	"ID_INPUT_POINTINGSTICK":              parseFlag,
	"ID_INPUT_SWITCH":                     parseFlag,
	"ID_INPUT_TABLET":                     parseFlag,
	"ID_INPUT_TABLET_PAD":                 parseFlag,
	"ID_INPUT_TOUCHPAD":                   parseFlag,
	"ID_INPUT_TOUCHSCREEN":                parseFlag,
	"ID_INPUT_TRACKBALL":                  parseFlag,
	"POINTINGSTICK_SENSITIVITY":           parseInteger,
	"POINTINGSTICK_CONST_ACCEL":           parseReal,
	"ID_INPUT_JOYSTICK_INTEGRATION":       enumParser("internal", "external"),
	"ID_INPUT_TOUCHPAD_INTEGRATION":       enumParser("internal", "external"),
	"XKB_FIXED_LAYOUT":                    parseXKBToken,
	"XKB_FIXED_VARIANT":                   parseXKBToken,
	"XKB_FIXED_MODEL":                     parseXKBToken,
	"KEYBOARD_LED_NUMLOCK":                literalParser("0"),
	"KEYBOARD_LED_CAPSLOCK":               literalParser("0"),
	"ACCEL_MOUNT_MATRIX":                  parseMountMatrix,
	"ACCEL_LOCATION":                      enumParser("display", "base"),
	"PROXIMITY_NEAR_LEVEL":                parseInteger,
	"ID_TAG_MASTER_OF_SEAT":               literalParser("1"),
}

var (
	keyboardKeyNameRe = regexp.MustCompile(`^KEYBOARD_KEY_[0-9a-f]+$`)
	evdevAbsNameRe    = regexp.MustCompile(`^EVDEV_ABS_[0-9a-f]{2}$`)

	integerRe  = regexp.MustCompile(`^[0-9]+$`)
	realRe     = regexp.MustCompile(`^([0-9]+(\.[0-9]*)?|\.[0-9]+)$`)
	xkbTokenRe = regexp.MustCompile(`^[0-9A-Za-z+/@._-]*$`)
	dpiTokenRe = regexp.MustCompile(`^(\*?)([0-9]+)@([0-9]+)$`)
	keyNameRe  = regexp.MustCompile(`^[0-9A-Za-z_]+$`)
	absValueRe = regexp.MustCompile(`^[0-9:]+$`)
)

// ParseValue parses raw according to the grammar selected by the property
// name. The caller strips any "#comment" suffix first; the grammar itself
// never sees comments.
func ParseValue(name, raw string) (Value, error) {
	if p, ok := fixedProperties[name]; ok {
		return p(raw)
	}
	if keyboardKeyNameRe.MatchString(name) {
		return parseKeycode(raw)
	}
	if evdevAbsNameRe.MatchString(name) {
		return parseAbsSettings(raw)
	}
	return nil, fmt.Errorf("unknown property %s", name)
}

func parseFlag(raw string) (Value, error) {
	switch raw {
	case "0":
		return Flag(false), nil
	case "1":
		return Flag(true), nil
	}
	return nil, fmt.Errorf("expected 0 or 1, got %q", raw)
}

func parseInteger(raw string) (Value, error) {
	if !integerRe.MatchString(raw) {
		return nil, fmt.Errorf("expected integer, got %q", raw)
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("expected integer, got %q", raw)
	}
	return Integer(n), nil
}

func parseReal(raw string) (Value, error) {
	if !realRe.MatchString(raw) {
		return nil, fmt.Errorf("expected decimal number, got %q", raw)
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("expected decimal number, got %q", raw)
	}
	return Real(f), nil
}

func enumParser(allowed ...string) valueParser {
	return func(raw string) (Value, error) {
		for _, a := range allowed {
			if raw == a {
				return Enum(raw), nil
			}
		}
		return nil, fmt.Errorf("expected one of %s, got %q",
			strings.Join(allowed, "/"), raw)
	}
}

func literalParser(want string) valueParser {
	return func(raw string) (Value, error) {
		if raw != want {
			return nil, fmt.Errorf("expected literal %q, got %q", want, raw)
		}
		return Literal(raw), nil
	}
}

func parseXKBToken(raw string) (Value, error) {
	if !xkbTokenRe.MatchString(raw) {
		return nil, fmt.Errorf("invalid XKB token %q", raw)
	}
	return Token(raw), nil
}

// parseDPIList parses one or more whitespace-separated "[*]DPI@HZ" tokens.
// The star marks an entry as the default profile; whether more than one
// entry carries it is a semantic question, not a grammar one.
func parseDPIList(raw string) (Value, error) {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return nil, fmt.Errorf("expected at least one DPI setting, got %q", raw)
	}
	list := make(DPIList, 0, len(fields))
	for _, f := range fields {
		m := dpiTokenRe.FindStringSubmatch(f)
		if m == nil {
			return nil, fmt.Errorf("invalid DPI setting %q", f)
		}
		dpi, err := strconv.Atoi(m[2])
		if err != nil {
			return nil, fmt.Errorf("invalid DPI setting %q", f)
		}
		hz, err := strconv.Atoi(m[3])
		if err != nil {
			return nil, fmt.Errorf("invalid DPI setting %q", f)
		}
		list = append(list, DPISetting{Default: m[1] == "*", DPI: dpi, Hz: hz})
	}
	return list, nil
}

// parseMountMatrix parses three semicolon-separated rows of three
// comma-separated signed decimals.
func parseMountMatrix(raw string) (Value, error) {
	rows := strings.Split(raw, ";")
	if len(rows) != 3 {
		return nil, fmt.Errorf("expected 3 matrix rows, got %d", len(rows))
	}
	var m MountMatrix
	for i, row := range rows {
		cells := strings.Split(row, ",")
		if len(cells) != 3 {
			return nil, fmt.Errorf("expected 3 entries in matrix row %d, got %d", i+1, len(cells))
		}
		for j, cell := range cells {
			f, err := parseSignedReal(strings.TrimSpace(cell))
			if err != nil {
				return nil, fmt.Errorf("invalid matrix entry %q", cell)
			}
			m[i][j] = f
		}
	}
	return m, nil
}

func parseSignedReal(s string) (float64, error) {
	body := s
	if len(body) > 0 && (body[0] == '-' || body[0] == '+') {
		body = body[1:]
	}
	if !realRe.MatchString(body) {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	return strconv.ParseFloat(s, 64)
}

// parseKeycode accepts the bare disable sentinel "!", or a key name with an
// optional "!" prefix.
func parseKeycode(raw string) (Value, error) {
	if raw == "!" {
		return Keycode{Disable: true}, nil
	}
	name, bang := strings.CutPrefix(raw, "!")
	if !keyNameRe.MatchString(name) {
		return nil, fmt.Errorf("invalid key name %q", raw)
	}
	return Keycode{Bang: bang, Name: name}, nil
}

// parseAbsSettings accepts a non-empty string of digits and colons, the
// axis-override format "min:max:res:fuzz:flat". Segments may be empty to
// leave a field untouched.
func parseAbsSettings(raw string) (Value, error) {
	if !absValueRe.MatchString(raw) {
		return nil, fmt.Errorf("invalid axis override %q", raw)
	}
	var settings AbsSettings
	for _, seg := range strings.Split(raw, ":") {
		if seg == "" {
			continue
		}
		n, err := strconv.ParseInt(seg, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid axis override %q", raw)
		}
		settings = append(settings, n)
	}
	return settings, nil
}
