package cli

import (
	"errors"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/hwdbkit/hwdbcheck/internal/config"
	"github.com/hwdbkit/hwdbcheck/internal/files/scanner"
	"github.com/hwdbkit/hwdbcheck/internal/hwdb"
	"github.com/hwdbkit/hwdbcheck/internal/keycodes"
	"github.com/hwdbkit/hwdbcheck/internal/logging"
	"github.com/hwdbkit/hwdbcheck/internal/report"
	"github.com/hwdbkit/hwdbcheck/pkg/hwdbcheck"
)

var checkCmd = &cobra.Command{
	Use:   "check [files...]",
	Short: "Validate hwdb files",
	Long: `Check validates the given hwdb source files.

With no arguments, the conventional hwdb directory is searched for files
matching the default glob. Each file is validated independently: a file
that fails to parse does not stop the rest of the batch.

Configuration precedence: flags > HWDBCHECK_* environment variables
(a .env file in the working directory is honored) > hwdbcheck.yaml >
built-in defaults.

Examples:
  # Validate everything under /usr/lib/udev/hwdb.d
  hwdbcheck check

  # Validate specific files
  hwdbcheck check 70-mouse.hwdb 70-touchpad.hwdb

  # Validate against a specific keycode table, JSON report
  hwdbcheck check --keycodes ./input-event-codes.h --json ./hwdb.d/*.hwdb`,
	Args: cobra.ArbitraryArgs,
	RunE: runCheck,
}

type checkFlagValues struct {
	hwdbDir  string
	fileGlob string
	keycodes string
	color    string
	jsonOut  bool
}

var checkFlags checkFlagValues

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVar(&checkFlags.hwdbDir, "hwdb-dir", "",
		"Directory searched for hwdb files when none are given")
	checkCmd.Flags().StringVar(&checkFlags.fileGlob, "file-glob", "",
		"Glob selecting hwdb files inside the hwdb directory")
	checkCmd.Flags().StringVar(&checkFlags.keycodes, "keycodes", "",
		"Keycode-name table for KEYBOARD_KEY_* checks\n"+
			"(kernel input-event-codes.h or one name per line)")
	checkCmd.Flags().StringVar(&checkFlags.color, "color", "",
		"Colorize output: auto, always or never")
	checkCmd.Flags().BoolVar(&checkFlags.jsonOut, "json", false,
		"Emit a JSON run report instead of console output")
}

func runCheck(cmd *cobra.Command, args []string) error {
	verbose := getVerboseFlag(cmd)
	logger := logging.NewConsoleLogger(verbose)

	cfg, err := resolveConfig(logger)
	if err != nil {
		return err
	}

	files, err := scanner.Discover(args, cfg.HwdbDir, cfg.FileGlob)
	if err != nil {
		return err
	}
	logger.Verbose("validating %d file(s)", len(files))

	oracle := loadOracle(cfg.Keycodes, logger)

	run := &hwdbcheck.RunReport{RunID: uuid.NewString(), OK: true}
	printer := report.NewPrinter(os.Stdout, cfg.Color)

	for _, path := range files {
		fileReport := hwdb.CheckFile(path, oracle)
		if !fileReport.Clean() {
			run.OK = false
		}
		run.Files = append(run.Files, fileReport)
		if !checkFlags.jsonOut {
			printer.PrintFile(fileReport)
		}
	}

	if checkFlags.jsonOut {
		if err := printer.PrintJSON(run); err != nil {
			return err
		}
	} else {
		printer.PrintResult(run)
	}

	if !run.OK {
		return hwdbcheck.ErrValidationFailed
	}
	return nil
}

// resolveConfig loads hwdbcheck.yaml, overlays the environment and then the
// flags, and validates the result.
func resolveConfig(logger hwdbcheck.Logger) (*config.Config, error) {
	_ = godotenv.Load()

	cfg, err := config.Load(".")
	if err != nil {
		if !errors.Is(err, config.ErrConfigNotFound) {
			return nil, err
		}
		cfg = config.Default()
	} else {
		logger.Verbose("loaded %s", config.ConfigFileName)
	}
	cfg.ApplyEnv()

	if checkFlags.hwdbDir != "" {
		cfg.HwdbDir = checkFlags.hwdbDir
	}
	if checkFlags.fileGlob != "" {
		cfg.FileGlob = checkFlags.fileGlob
	}
	if checkFlags.keycodes != "" {
		cfg.Keycodes = checkFlags.keycodes
	}
	if checkFlags.color != "" {
		cfg.Color = checkFlags.color
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadOracle builds the keycode oracle, or returns nil when no table is
// available. Keycode checks are an optional capability: their absence is a
// warning, never a failure.
func loadOracle(path string, logger hwdbcheck.Logger) hwdbcheck.KeycodeOracle {
	if path == "" {
		return nil
	}
	set, err := keycodes.Load(path)
	if err != nil {
		logger.Info("WARNING: keycode table unavailable, keycode checks skipped (%v)", err)
		return nil
	}
	logger.Verbose("loaded %d keycode names from %s", set.Len(), path)
	return set
}
