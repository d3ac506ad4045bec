package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/timewinder-dev/shuttle"
	"github.com/timewinder-dev/shuttle/model"
)

var (
	configPath  string
	detailsFlag bool
	verifyFlag  bool
)

var runCmd = &cobra.Command{
	Use:   "run [NOTES...]",
	Short: "Solve bus notes (the bundled notes when none are given)",
	Run:   runCommand,
}

func init() {
	runCmd.Flags().StringVar(&configPath, "config", "", "Path to a TOML config file")
	runCmd.Flags().BoolVar(&detailsFlag, "details", false, "Show the alignment stages on stderr")
	runCmd.Flags().BoolVar(&verifyFlag, "verify", false, "Re-check the aligned timestamp against every bus")
}

type source struct {
	name string
	text string
}

func runCommand(cmd *cobra.Command, args []string) {
	cfg := model.DefaultConfig()
	if configPath != "" {
		var err error
		cfg, err = model.LoadConfigFromFile(configPath)
		if err != nil {
			log.Fatal().Err(err).Str("config", configPath).Msg("Couldn't load config")
		}
	}

	sources, err := loadSources(cfg, args)
	if err != nil {
		log.Fatal().Err(err).Msg("Couldn't read notes")
	}

	exec := model.NewExecutor(cfg)
	exec.Logger = log.Logger
	exec.Verify = verifyFlag
	if detailsFlag {
		exec.Reporter = &model.ColorReporter{Writer: os.Stderr}
	}

	err = solveSources(exec, sources, os.Stdout, os.Stderr)
	if err != nil {
		log.Fatal().Err(err).Msg("Couldn't solve notes")
	}
}

// solveSources writes the answer lines for each source to out, and the
// stage details to details when --details is set. It stops at the first
// source that fails.
func solveSources(exec *model.Executor, sources []source, out, details io.Writer) error {
	for _, src := range sources {
		log.Debug().Str("notes", src.name).Msg("solving")
		ans, err := exec.Solve(src.text)
		if err != nil {
			return fmt.Errorf("%s: %w", src.name, err)
		}
		fmt.Fprint(out, model.FormatAnswer(ans))
		if detailsFlag {
			fmt.Fprint(details, model.FormatStages(ans))
		}
	}
	if detailsFlag && len(sources) > 1 {
		fmt.Fprint(details, model.FormatCacheStats(exec.CacheStats()))
	}
	return nil
}

// loadSources picks the notes to solve: files named on the command line,
// then the config's input file, then the bundled notes.
func loadSources(cfg *model.Config, args []string) ([]source, error) {
	paths := args
	if len(paths) == 0 && cfg.Input.File != "" {
		paths = []string{cfg.Input.File}
	}
	if len(paths) == 0 {
		return []source{{name: "bundled", text: shuttle.BundledInput()}}, nil
	}
	var out []source
	for _, p := range paths {
		b, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", p, err)
		}
		out = append(out, source{name: p, text: string(b)})
	}
	return out, nil
}
