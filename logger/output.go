package logger

// Output categories control WHAT kind of information the CLI shows, next to
// the severity filtering of the log level.
//
//	0 (default) - generated source on stdout, errors with hints, final status
//	1 (-v)      - + every written file, loaded packages and model files
//	2 (-vv)     - + timing, effective configuration, formatter commands
//	3 (-vvv)    - + the rendered Dart source of every file

// OutputCategory defines a category of output that can be enabled/disabled
type OutputCategory int

const (
	// Level 0 - always shown
	OutputResults    OutputCategory = iota // generated source, check diffs
	OutputErrors                           // errors with hints
	OutputUserStatus                       // final success/failure line

	// Level 1 (-v)
	OutputWrittenFiles // one line per written file
	OutputSources      // loaded Go packages and model files
	OutputWatch        // watcher events and rebuilds

	// Level 2 (-vv)
	OutputTiming    // duration of load, render and format
	OutputConfig    // effective configuration values
	OutputFormatter // formatter command lines

	// Level 3 (-vvv)
	OutputRenderedSource // full Dart source of every rendered file
)

var categoryLevels = map[OutputCategory]int{
	OutputResults:    VerbosityUser,
	OutputErrors:     VerbosityUser,
	OutputUserStatus: VerbosityUser,

	OutputWrittenFiles: VerbosityInfo,
	OutputSources:      VerbosityInfo,
	OutputWatch:        VerbosityInfo,

	OutputTiming:    VerbosityDebug,
	OutputConfig:    VerbosityDebug,
	OutputFormatter: VerbosityDebug,

	OutputRenderedSource: VerbosityTrace,
}

// ShouldOutput returns true if the given category should be shown at the given verbosity
func ShouldOutput(verbosity int, category OutputCategory) bool {
	minLevel, ok := categoryLevels[category]
	if !ok {
		return verbosity >= VerbosityTrace
	}
	return verbosity >= minLevel
}

var categoryNames = map[OutputCategory]string{
	OutputResults:        "results",
	OutputErrors:         "errors",
	OutputUserStatus:     "status",
	OutputWrittenFiles:   "written-files",
	OutputSources:        "sources",
	OutputWatch:          "watch",
	OutputTiming:         "timing",
	OutputConfig:         "config",
	OutputFormatter:      "formatter",
	OutputRenderedSource: "rendered-source",
}

// CategoryName returns the human-readable name for an output category
func CategoryName(category OutputCategory) string {
	if name, ok := categoryNames[category]; ok {
		return name
	}
	return "unknown"
}
