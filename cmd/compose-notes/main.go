// Command compose-notes combines English release notes and their Chinese
// translation into a single bilingual release document.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/germanamz/relnotes/pkg/mdrender"
	"github.com/germanamz/relnotes/pkg/releasenotes"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("compose-notes", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: compose-notes [flags] <version> <upstream-repo> <upstream-release-url> <english.md> <chinese.md> <output.md>\n\nFlags:\n")
		fs.PrintDefaults()
	}

	check := fs.Bool("check", false, "do not write; exit 1 with a diff if the output is out of date")
	preview := fs.Bool("preview", false, "render the composed notes to stdout")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}

	if fs.NArg() != 6 {
		fs.Usage()
		return 1
	}

	for _, a := range fs.Args() {
		if a == "" {
			fs.Usage()
			return 1
		}
	}

	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) == 0 && a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))

	englishFile, chineseFile, outputFile := fs.Arg(3), fs.Arg(4), fs.Arg(5)

	english, err := os.ReadFile(englishFile) //nolint:gosec // path is a CLI argument
	if err != nil {
		log.Error("read english notes", "error", err)
		return 1
	}

	chinese, err := os.ReadFile(chineseFile) //nolint:gosec // path is a CLI argument
	if err != nil {
		log.Error("read chinese notes", "error", err)
		return 1
	}

	doc := releasenotes.Compose(releasenotes.Params{
		Version:            fs.Arg(0),
		UpstreamRepo:       fs.Arg(1),
		UpstreamReleaseURL: fs.Arg(2),
		EnglishBody:        string(english),
		ChineseBody:        string(chinese),
	})

	if *check {
		diff, err := releasenotes.Diff(outputFile, doc)
		if err != nil {
			log.Error("check release notes", "error", err)
			return 1
		}
		if diff != "" {
			fmt.Fprint(stdout, diff)
			log.Warn("Bilingual release notes are out of date", "path", outputFile)
			return 1
		}
		log.Info("Bilingual release notes are up to date", "path", outputFile)
		return 0
	}

	if err := os.WriteFile(outputFile, []byte(doc), 0o644); err != nil { //nolint:gosec // release notes are not secret
		log.Error("write release notes", "error", err)
		return 1
	}

	log.Info("Wrote bilingual release notes", "path", outputFile)

	if *preview {
		fmt.Fprintln(stdout, mdrender.Render(doc, mdrender.DefaultWidth))
	}

	return 0
}
