package hwdbcheck

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess      = 0  // All files validated clean
	ExitGeneralError = 1  // Validation findings, or unclassified error
	ExitUsageError   = 2  // CLI usage error (invalid flags or arguments)
	ExitPanic        = 3  // Internal panic (unexpected crash)
	ExitConfigError  = 10 // Invalid configuration or no input files
)

const (
	// DefaultHwdbDir is the conventional directory holding hwdb source
	// files on a udev-based system.
	DefaultHwdbDir = "/usr/lib/udev/hwdb.d"

	// DefaultFileGlob selects the hwdb files maintained in this format.
	// The two-digit prefix is the udev priority convention.
	DefaultFileGlob = "[67][0-9]-*.hwdb"

	// DefaultKeycodesPath is where the kernel's input event code header
	// usually lives; it doubles as the default keycode-name table.
	DefaultKeycodesPath = "/usr/include/linux/input-event-codes.h"
)
