package hwdbcheck

// KeycodeOracle answers whether a keycode name is known to the kernel's
// input subsystem. It is an optional capability: validators accept a nil
// oracle and skip keycode-name checks when none is available, mirroring a
// system without the kernel headers installed.
type KeycodeOracle interface {
	// IsKnownKeycode reports whether name (e.g. "KEY_VOLUMEUP" or
	// "BTN_LEFT") is a known input event code. The lookup is
	// case-sensitive; callers normalize before asking.
	IsKnownKeycode(name string) bool
}
