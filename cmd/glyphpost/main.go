// Command glyphpost styles post text with Unicode bold and italic glyphs.
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
	"strings"
	"syscall"

	"github.com/iw2rmb/glyphpost"
	"github.com/iw2rmb/glyphpost/glyph"
	"github.com/iw2rmb/glyphpost/internal/app"
	"github.com/iw2rmb/glyphpost/internal/config"
	"github.com/iw2rmb/glyphpost/internal/logger"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cmd := "tui"
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		cmd, args = args[0], args[1:]
	}

	switch cmd {
	case "tui":
		return runTUI(args, stderr)
	case "style":
		return runStyle(args, stdin, stdout, stderr)
	case "version":
		fmt.Fprintf(stdout, "glyphpost %s\n", glyphpost.VersionTag())
		return 0
	case "help":
		usage(stdout)
		return 0
	default:
		fmt.Fprintf(stderr, "Error: unknown command %q\n\n", cmd)
		usage(stderr)
		return 2
	}
}

func usage(w io.Writer) {
	fmt.Fprintf(w, "glyphpost - bold and italic Unicode styling for social posts\n\n")
	fmt.Fprintf(w, "Usage:\n")
	fmt.Fprintf(w, "  glyphpost [tui] [-config path]      Open the stylizer\n")
	fmt.Fprintf(w, "  glyphpost style [-variant v] [text]  Style text (stdin when no text)\n")
	fmt.Fprintf(w, "  glyphpost version                    Print the version\n\n")
	fmt.Fprintf(w, "Variants: bold, italic, bold-italic\n")
}

func runTUI(args []string, stderr io.Writer) int {
	fs := flag.NewFlagSet("tui", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "Path to configuration file")
	logLevel := fs.String("log-level", "", "Log level (trace, debug, info, warn, error)")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	var (
		cfg *config.Config
		err error
	)
	if *configPath != "" {
		cfg, err = config.LoadFromPath(*configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}

	log := logger.New(logger.Options{File: cfg.Log.File})
	defer log.Close()
	log.SetLogLevel(cfg.Log.Level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, cfg, log); err != nil {
		log.Error("stylizer failed", err)
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func runStyle(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("style", flag.ContinueOnError)
	fs.SetOutput(stderr)
	variantName := fs.String("variant", "bold", "Glyph variant (bold, italic, bold-italic)")
	clearStyle := fs.Bool("clear", false, "Strip styled glyphs back to plain letters")
	logLevel := fs.String("log-level", "warn", "Log level (trace, debug, info, warn, error)")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	base := logger.New(logger.Options{Console: stderr, ConsoleLevel: slog.LevelWarn})
	base.SetLogLevel(*logLevel)
	log := logger.Component(base, "style")

	v, err := glyph.ParseVariant(*variantName)
	if err != nil {
		log.Error("invalid variant", err)
		return 2
	}

	var text string
	if fs.NArg() > 0 {
		text = strings.Join(fs.Args(), " ") + "\n"
	} else {
		b, err := io.ReadAll(stdin)
		if err != nil {
			log.Error("read stdin", err)
			return 1
		}
		text = string(b)
	}

	out := glyph.Transform(text, v)
	if *clearStyle {
		out = glyph.Plain(text)
	}
	if !glyph.HasDigits(v) && !*clearStyle && strings.ContainsAny(text, "0123456789") {
		log.Warn("digits have no styled glyphs in this variant", "variant", v.String())
	}

	if _, err := io.WriteString(stdout, out); err != nil {
		if errors.Is(err, syscall.EPIPE) {
			return 0
		}
		log.Error("write output", err)
		return 1
	}
	return 0
}
