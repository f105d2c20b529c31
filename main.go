// islandgen grows random islands on an ocean grid and shows the result.
//
//	islandgen [-size 50] [-islands 5] [-mountains=true] [-seed N] [-print] [-theme emoji|digits]
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"islandgen/internal/generate"
	"islandgen/internal/render"
	"islandgen/internal/rng"
	"islandgen/internal/view"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"
)

type options struct {
	cfg     generate.Config
	print   bool
	theme   render.Theme
	verbose bool
}

func parseFlags(args []string, now int64) (options, error) {
	def := generate.DefaultConfig()
	fs := flag.NewFlagSet("islandgen", flag.ContinueOnError)
	size := fs.Int("size", def.Size, "map side length")
	islands := fs.Int("islands", def.Islands, "number of islands")
	mountains := fs.Bool("mountains", def.Mountains, "promote shore tiles to mountains")
	stability := fs.Float64("stability", def.Stability, "shore weight in [0,1]; higher gives smaller islands")
	seed := fs.Int64("seed", now, "random seed (defaults to the current time)")
	printOnly := fs.Bool("print", false, "write the map to stdout and exit")
	themeName := fs.String("theme", render.EmojiTheme.Name, "glyph theme: emoji or digits")
	verbose := fs.Bool("v", false, "log generation details to stderr")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	theme, ok := render.ThemeByName(*themeName)
	if !ok {
		return options{}, fmt.Errorf("unknown theme %q", *themeName)
	}
	cfg := def
	cfg.Size = *size
	cfg.Islands = *islands
	cfg.Mountains = *mountains
	cfg.Stability = *stability
	cfg.Seed = *seed
	if err := cfg.Validate(); err != nil {
		return options{}, err
	}
	return options{cfg: cfg, print: *printOnly, theme: theme, verbose: *verbose}, nil
}

// flagExitCode maps a parseFlags error to the process exit status. Asking
// for help is not a failure; the flag package has already printed usage.
func flagExitCode(err error) int {
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	return 2
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// printMap generates one map and writes it to w, with ANSI colors when
// color is set.
func printMap(w io.Writer, opts options, color bool) error {
	gen, err := generate.Generate(opts.cfg)
	if err != nil {
		return err
	}
	if color {
		return render.WriteColor(w, gen.Grid().Tiles(), opts.theme)
	}
	return render.WriteText(w, gen.Grid().Tiles(), opts.theme)
}

func runViewer(opts options) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	// Logging to stderr would draw over the screen.
	opts.cfg.Logger = nil
	v, err := view.New(screen, opts.cfg, opts.theme, rng.New(time.Now().UnixNano()))
	if err != nil {
		return err
	}
	return v.Run()
}

func main() {
	opts, err := parseFlags(os.Args[1:], time.Now().UnixNano())
	if err != nil {
		code := flagExitCode(err)
		if code != 0 {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(code)
	}
	opts.cfg.Logger = newLogger(os.Stderr, opts.verbose)

	if opts.print {
		err = printMap(os.Stdout, opts, term.IsTerminal(int(os.Stdout.Fd())))
	} else {
		err = runViewer(opts)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
