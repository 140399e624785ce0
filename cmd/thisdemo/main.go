// cmd/thisdemo/main.go
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"github.com/sghaida/thisbind/config"
	"github.com/sghaida/thisbind/dispatch"
	"github.com/sghaida/thisbind/scene"
)

var log = commonlog.GetLogger("thisbind.cli")

// loadConfig is overridden in tests.
var loadConfig = config.LoadFromEnv

// run executes the demo and returns an exit code.
// It exists separately from main to allow unit testing without os.Exit.
func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := loadConfig()
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "config:", err)
		return 1
	}

	flags := flag.NewFlagSet("thisdemo", flag.ContinueOnError)
	flags.SetOutput(stderr)

	scenePath := flags.String("scene", cfg.ScenePath, "scene file (.yaml, .yml or .toml); empty uses the built-in scene")
	verbosity := flags.Int("v", cfg.Verbosity, "log verbosity (-4 silent .. 2 debug)")
	logFile := flags.String("log", cfg.LogFile, "log file; empty logs to stderr")
	list := flags.Bool("list", false, "list buttons without clicking them")

	if err := flags.Parse(args); err != nil {
		return 2
	}
	if flags.NArg() > 0 {
		_, _ = fmt.Fprintln(stderr, "usage: thisdemo [-scene file] [-v N] [-log file] [-list]")
		return 2
	}

	cfg.ScenePath = strings.TrimSpace(*scenePath)
	cfg.Verbosity = *verbosity
	cfg.LogFile = *logFile
	if err := cfg.Validate(); err != nil {
		_, _ = fmt.Fprintln(stderr, "config:", err)
		return 2
	}
	commonlog.Configure(cfg.Verbosity, cfg.LogPath())

	sc, err := loadScene(cfg.ScenePath)
	if err != nil {
		log.Errorf("%s", err)
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}

	if *list {
		return listButtons(sc, stdout)
	}

	stage, err := scene.Build(sc, dispatch.NewRegistry())
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}

	for _, id := range stage.Buttons {
		lines, err := stage.Registry.Click(id)
		if err != nil {
			// Receiver loss is what some buttons demonstrate; report it, keep going.
			_, _ = fmt.Fprintf(stdout, "%s: error: %s\n", id, err)
			continue
		}
		for _, line := range lines {
			_, _ = fmt.Fprintf(stdout, "%s: %s\n", id, line)
		}
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func loadScene(path string) (*scene.Scene, error) {
	if path == "" {
		log.Info("using built-in scene")
		return scene.Default()
	}
	log.Infof("loading scene %s", path)
	return scene.Load(path)
}

func listButtons(sc *scene.Scene, stdout io.Writer) int {
	tw := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "BUTTON\tBEHAVIOR\tSTRATEGY")
	for _, b := range sc.Buttons {
		_, _ = fmt.Fprintf(tw, "%s\t%s.%s\t%s\n", b.ID, b.Object, b.Behavior, strings.ToLower(b.Strategy))
	}
	if err := tw.Flush(); err != nil {
		return 1
	}
	return 0
}
