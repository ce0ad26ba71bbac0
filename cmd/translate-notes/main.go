// Command translate-notes translates English markdown release notes into
// Simplified Chinese. When no API key is configured or the translation call
// fails, the English notes are written instead and the command still exits 0.
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
	"syscall"

	"github.com/germanamz/relnotes/pkg/config"
	"github.com/germanamz/relnotes/pkg/mdrender"
	"github.com/germanamz/relnotes/pkg/providers/openai"
	"github.com/germanamz/relnotes/pkg/translate"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	cancel()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("translate-notes", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: translate-notes [flags] <english-input.md> <chinese-output.md>\n\nFlags:\n")
		fs.PrintDefaults()
	}

	envFile := fs.String("env", ".env", "path to .env file (ignored if missing)")
	configPath := fs.String("config", "", "path to YAML configuration file")
	preview := fs.Bool("preview", false, "render the written notes to stdout")
	verbose := fs.Bool("verbose", false, "log debug details such as token usage")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}

	if fs.NArg() != 2 {
		fs.Usage()
		return 1
	}

	inputPath, outputPath := fs.Arg(0), fs.Arg(1)
	log := newLogger(stderr, *verbose)

	data, err := os.ReadFile(inputPath) //nolint:gosec // path is a CLI argument
	if err != nil {
		log.Error("read input", "error", err)
		return 1
	}

	tr, cfgErr := newTranslator(*envFile, *configPath)
	if cfgErr != nil {
		log.Warn("Translation config invalid. Fallback to English notes.", "error", cfgErr)
	}

	res := translate.Run(ctx, translate.Options{
		Input:      string(data),
		Translator: tr,
		Logger:     log,
	})

	if err := os.WriteFile(outputPath, []byte(res.Output), 0o644); err != nil { //nolint:gosec // release notes are not secret
		log.Error("write output", "error", err)
		return 1
	}

	switch res.Outcome {
	case translate.Empty:
		log.Debug("input is empty, wrote empty notes", "path", outputPath)
	case translate.Passthrough:
		if cfgErr == nil {
			log.Info(config.EnvAPIKey + " not set. Fallback to English notes.")
		}
	case translate.Fallback:
		log.Warn("Translation failed. Fallback to English notes.", "error", res.Err)
	case translate.Translated:
		log.Info("Translated notes written", "path", outputPath)
		if tr != nil {
			if a, ok := tr.Completer.(*openai.Adapter); ok {
				if tokens, ok := a.Usage.Last(); ok {
					log.Debug("token usage", "model", a.Name, "tokens", tokens)
				}
			}
		}
	}

	if *preview && res.Output != "" {
		fmt.Fprintln(stdout, mdrender.Render(res.Output, mdrender.DefaultWidth))
	}

	return 0
}

// newTranslator resolves configuration and returns the translator to use,
// or nil when no API key is configured.
func newTranslator(envFile, configPath string) (*translate.Translator, error) {
	if err := config.LoadDotEnv(envFile); err != nil {
		return nil, err
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	if !cfg.HasCredential() {
		return nil, nil
	}

	timeout, err := cfg.RequestTimeout()
	if err != nil {
		return nil, err
	}

	a := openai.New(openai.ResolveEndpoint(cfg.BaseURL), cfg.APIKey, cfg.Model)
	a.Temperature = translate.Temperature
	a.Timeout = timeout

	return translate.New(a), nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) == 0 && a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))
}
