package config

// This file implements CLI flag parsing and help text.
// Boolean overrides (e.g. --no-color) are captured separately and applied
// after Parse so that Config defaults hold unless the user passes the flag.

import (
	"flag"
	"fmt"
	"os"
)

// ParseFlags parses args (not including the program name) into cfg. On
// --help or --version it prints and exits. On error it returns non-nil
// (e.g. unknown flag, missing input path).
func ParseFlags(cfg *Config, version string, args []string) error {
	fs := flag.NewFlagSet("voxprep", flag.ContinueOnError)
	fs.Usage = func() { printUsage(version) }

	var ov overrideFlags

	fs.StringVar(&cfg.OutputDir, "output-dir", cfg.OutputDir, "Output directory (must exist)")
	fs.StringVar(&cfg.OutputDir, "o", cfg.OutputDir, "Same as --output-dir")

	fs.BoolVar(&cfg.AssumeYes, "yes", false, "Skip the confirmation prompt")
	fs.BoolVar(&cfg.AssumeYes, "y", false, "Same as --yes")
	fs.BoolVar(&cfg.DryRun, "dry-run", false, "Preview plan and estimate only; extract nothing")
	fs.BoolVar(&cfg.DryRun, "d", false, "Same as --dry-run")
	fs.BoolVar(&cfg.StrictMode, "strict", false, "Disable automatic ffmpeg retry fallbacks")

	fs.BoolVar(&ov.forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&ov.noColor, "no-color", false, "Disable colored logs")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Verbose output (show ffmpeg commands)")
	fs.BoolVar(&cfg.Verbose, "v", false, "Same as --verbose")
	fs.StringVar(&cfg.LogFile, "log", cfg.LogFile, "Append logs to file")
	fs.StringVar(&cfg.LogFile, "l", cfg.LogFile, "Same as --log")
	fs.BoolVar(&cfg.CheckOnly, "check", false, "Run system diagnostics and exit")
	fs.BoolVar(&cfg.CheckOnly, "c", false, "Same as --check")

	fs.BoolVar(&ov.showVersion, "version", false, "Print version and exit")
	fs.BoolVar(&ov.showVersion, "V", false, "Same as --version")
	fs.BoolVar(&ov.showHelp, "help", false, "Show this help and exit")
	fs.BoolVar(&ov.showHelp, "h", false, "Same as --help")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if ov.noColor {
		cfg.ColorMode = ColorNever
	} else if ov.forceColor {
		cfg.ColorMode = ColorAlways
	}

	if ov.showHelp {
		printUsage(version)
		os.Exit(0)
	}
	if ov.showVersion {
		fmt.Fprintln(os.Stdout, "voxprep v"+version)
		os.Exit(0)
	}

	return parsePositionalArgs(fs, cfg)
}

// overrideFlags holds boolean flags applied after Parse. These either
// invert a default (noColor) or trigger exit (showHelp, showVersion).
type overrideFlags struct {
	forceColor  bool
	noColor     bool
	showVersion bool
	showHelp    bool
}

// parsePositionalArgs sets InputPath from the single positional arg when
// not in CheckOnly mode. Zero args is [ErrUsage]; more than one is an error.
func parsePositionalArgs(fs *flag.FlagSet, cfg *Config) error {
	args := fs.Args()
	if cfg.CheckOnly {
		return nil
	}
	switch len(args) {
	case 0:
		return ErrUsage
	case 1:
		cfg.InputPath = args[0]
		return nil
	default:
		return fmt.Errorf("expected exactly one input video, got %d arguments", len(args))
	}
}

// printUsage writes the help text to stderr. Column-aligned for readability.
func printUsage(version string) {
	const col1 = 26
	lines := []struct {
		flags string
		desc  string
	}{
		{"", "voxprep v" + version + " — per-stream audio/vision variant extractor"},
		{"", ""},
		{"  voxprep [OPTIONS] <input_video>", ""},
		{"", ""},
		{"Output", ""},
		{"  -o, --output-dir <dir>", "Output directory, must exist (default: processing)"},
		{"", ""},
		{"Behavior", ""},
		{"  -y, --yes", "Skip the confirmation prompt"},
		{"  -d, --dry-run", "Preview plan and estimate only"},
		{"  --strict", "Disable automatic ffmpeg retry fallbacks"},
		{"", ""},
		{"Display", ""},
		{"  --color", "Force colored logs"},
		{"  --no-color", "Disable colored logs"},
		{"  -v, --verbose", "Verbose output (show ffmpeg commands)"},
		{"", ""},
		{"Utility", ""},
		{"  -l, --log <path>", "Append logs to file"},
		{"  -c, --check", "System diagnostics (ffmpeg, filters, encoders)"},
		{"  -V, --version", "Print version and exit"},
		{"  -h, --help", "Show this help and exit"},
	}

	for _, l := range lines {
		switch {
		case l.flags == "" && l.desc == "":
			fmt.Fprintln(os.Stderr)
		case l.desc == "":
			fmt.Fprintln(os.Stderr, l.flags)
		case l.flags == "":
			fmt.Fprintln(os.Stderr, l.desc)
		default:
			padding := col1 - len(l.flags)
			if padding < 1 {
				padding = 1
			}
			fmt.Fprintf(os.Stderr, "%s%*s%s\n", l.flags, padding, "", l.desc)
		}
	}
}
