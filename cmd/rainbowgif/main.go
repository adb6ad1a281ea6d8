// Command rainbowgif renders text as a looping rainbow-gradient GIF.
//
// Usage:
//
//	rainbowgif [--text 77.7%] [--font_size 128] [--font_path font.ttf] [--output_git_path out.gif]
//
// Flag defaults can be overridden with RAINBOWGIF_* environment variables
// or a .env file in the working directory.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/gogpu/rainbowgif"
	"github.com/gogpu/rainbowgif/internal/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stderr)
	stop()
	os.Exit(code)
}

// run parses args, generates the animation and returns the exit code:
// 0 on success, 1 on failure, 2 on bad flags.
func run(ctx context.Context, args []string, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "rainbowgif: load .env: %v\n", err)
		return 1
	}

	fs := flag.NewFlagSet("rainbowgif", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		text     = fs.String("text", cfg.Text, "text to render")
		fontSize = fs.Int("font_size", cfg.FontSize, "font size in pixels")
		fontPath = fs.String("font_path", cfg.FontPath, "TrueType/OpenType font file (default: bundled Go Regular)")
		output   = fs.String("output_git_path", cfg.Output, "output GIF path")
	)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	rainbowgif.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cfg.LogLevel})))

	opts := rainbowgif.DefaultOptions()
	opts.Text = *text
	opts.FontSize = float64(*fontSize)
	opts.FontPath, err = expandHome(*fontPath)
	if err != nil {
		fmt.Fprintf(stderr, "rainbowgif: %v\n", err)
		return 1
	}
	opts.Output, err = expandHome(*output)
	if err != nil {
		fmt.Fprintf(stderr, "rainbowgif: %v\n", err)
		return 1
	}
	opts.Workers = cfg.Workers

	start := time.Now()
	if err := rainbowgif.Generate(ctx, opts); err != nil {
		// Library errors carry their own "rainbowgif:" prefix.
		fmt.Fprintln(stderr, err)
		return 1
	}
	rainbowgif.Logger().Debug("done", "output", opts.Output, "elapsed", time.Since(start))
	return 0
}

// expandHome replaces a leading "~" with the user's home directory.
func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") && !strings.HasPrefix(path, `~`+string(filepath.Separator)) {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("expand %q: %w", path, err)
	}
	return filepath.Join(home, path[1:]), nil
}
