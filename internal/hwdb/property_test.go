package hwdb

import (
	"reflect"
	"testing"
)

func TestParseValue_Accepts(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		value Value
	}{
		{"ID_INPUT", "1", Flag(true)},
		{"ID_INPUT_TOUCHPAD", "0", Flag(false)},
		{"ID_AUTOSUSPEND", "1", Flag(true)},
		{"MOUSE_WHEEL_CLICK_ANGLE", "15", Integer(15)},
		{"POINTINGSTICK_SENSITIVITY", "200", Integer(200)},
		{"PROXIMITY_NEAR_LEVEL", "25", Integer(25)},
		{"POINTINGSTICK_CONST_ACCEL", "1.25", Real(1.25)},
		{"POINTINGSTICK_CONST_ACCEL", ".5", Real(0.5)},
		{"POINTINGSTICK_CONST_ACCEL", "2.", Real(2)},
		{"ID_INPUT_TOUCHPAD_INTEGRATION", "internal", Enum("internal")},
		{"ACCEL_LOCATION", "base", Enum("base")},
		{"XKB_FIXED_LAYOUT", "ch", Token("ch")},
		{"XKB_FIXED_LAYOUT", "", Token("")},
		{"XKB_FIXED_VARIANT", "de_nodeadkeys", Token("de_nodeadkeys")},
		{"KEYBOARD_LED_NUMLOCK", "0", Literal("0")},
		{"ID_TAG_MASTER_OF_SEAT", "1", Literal("1")},
		{"MOUSE_DPI", "800@125", DPIList{{Default: false, DPI: 800, Hz: 125}}},
		{"MOUSE_DPI", "*400@1000 800@1000", DPIList{
			{Default: true, DPI: 400, Hz: 1000},
			{Default: false, DPI: 800, Hz: 1000},
		}},
		{"ACCEL_MOUNT_MATRIX", "0, 1, 0; -1, 0, 0; 0, 0, 1", MountMatrix{
			{0, 1, 0}, {-1, 0, 0}, {0, 0, 1},
		}},
		{"KEYBOARD_KEY_70035", "grave", Keycode{Name: "grave"}},
		{"KEYBOARD_KEY_70035", "!", Keycode{Disable: true}},
		{"KEYBOARD_KEY_70035", "!esc", Keycode{Bang: true, Name: "esc"}},
		{"EVDEV_ABS_00", "0:1023:255:9", AbsSettings{0, 1023, 255, 9}},
		{"EVDEV_ABS_35", "::100", AbsSettings{100}},
	}

	for _, tc := range tests {
		t.Run(tc.name+"="+tc.raw, func(t *testing.T) {
			got, err := ParseValue(tc.name, tc.raw)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tc.value) {
				t.Errorf("got %#v, want %#v", got, tc.value)
			}
		})
	}
}

func TestParseValue_Rejects(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"ID_INPUT", "2"},
		{"ID_INPUT", "true"},
		{"MOUSE_WHEEL_CLICK_ANGLE", "-15"},
		{"MOUSE_WHEEL_CLICK_ANGLE", "15.5"},
		{"POINTINGSTICK_CONST_ACCEL", "-1.0"},
		{"POINTINGSTICK_CONST_ACCEL", "."},
		{"ID_INPUT_TOUCHPAD_INTEGRATION", "builtin"},
		{"ACCEL_LOCATION", "lid"},
		{"KEYBOARD_LED_NUMLOCK", "1"},
		{"ID_TAG_MASTER_OF_SEAT", "0"},
		{"MOUSE_DPI", ""},
		{"MOUSE_DPI", "800"},
		{"MOUSE_DPI", "800@"},
		{"MOUSE_DPI", "*@125"},
		{"ACCEL_MOUNT_MATRIX", "1,0,0;0,1,0"},
		{"ACCEL_MOUNT_MATRIX", "1,0;0,1,0;0,0,1"},
		{"ACCEL_MOUNT_MATRIX", "a,0,0;0,1,0;0,0,1"},
		{"ACCEL_MOUNT_MATRIX", "--1,0,0;0,1,0;0,0,1"},
		{"KEYBOARD_KEY_70035", ""},
		{"KEYBOARD_KEY_70035", "two words"},
		{"KEYBOARD_KEY_70035", "!!"},
		{"EVDEV_ABS_00", ""},
		{"EVDEV_ABS_00", "0:10a"},
		// Names outside the closed table never parse.
		{"MOUSE_DPI_EXTRA", "800@125"},
		{"SOME_RANDOM_TAG", "1"},
		{"KEYBOARD_KEY_70X35", "grave"}, // uppercase hex digit in name
		{"EVDEV_ABS_0", "0:10"},         // one hex digit, needs two
		{"EVDEV_ABS_000", "0:10"},       // three hex digits
	}

	for _, tc := range tests {
		t.Run(tc.name+"="+tc.raw, func(t *testing.T) {
			if v, err := ParseValue(tc.name, tc.raw); err == nil {
				t.Errorf("expected error, got %#v", v)
			}
		})
	}
}
