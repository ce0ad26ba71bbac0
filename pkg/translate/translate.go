// Package translate turns English release notes into Simplified Chinese
// through a chat completion model, falling back to the English text whenever
// translation is not possible.
package translate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/germanamz/relnotes/pkg/chats/message"
	"github.com/germanamz/relnotes/pkg/modeladapter"
)

// Instruction is the system prompt sent with every translation request.
const Instruction = "Translate GitHub release notes from English to Simplified Chinese. " +
	"Keep markdown structure, code blocks, links, issue numbers, and version identifiers unchanged."

// Temperature is the sampling temperature used for translation requests.
const Temperature = 0.2

// ErrEmptyTranslation is returned when the model replies with only whitespace.
var ErrEmptyTranslation = errors.New("translate: response did not include content")

// Translator sends release notes to a Completer.
type Translator struct {
	Completer modeladapter.Completer
}

// New creates a Translator backed by c.
func New(c modeladapter.Completer) *Translator {
	return &Translator{Completer: c}
}

// Translate returns the trimmed translation of body.
func (t *Translator) Translate(ctx context.Context, body string) (string, error) {
	reply, err := t.Completer.Complete(ctx, []message.Message{
		message.System(Instruction),
		message.User(body),
	})
	if err != nil {
		return "", fmt.Errorf("translate: %w", err)
	}

	if reply.IsEmpty() {
		return "", ErrEmptyTranslation
	}

	return reply.TrimmedContent(), nil
}

// Outcome describes which path Run took.
type Outcome int

const (
	// Empty means the input had no content; the output is empty.
	Empty Outcome = iota
	// Passthrough means no credential was configured; the output is the input.
	Passthrough
	// Translated means the output is the model's translation.
	Translated
	// Fallback means translation failed; the output is the input.
	Fallback
)

func (o Outcome) String() string {
	switch o {
	case Empty:
		return "empty"
	case Passthrough:
		return "passthrough"
	case Translated:
		return "translated"
	case Fallback:
		return "fallback"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// Result is the text to write and how it was produced.
type Result struct {
	Outcome Outcome
	Output  string
	Err     error // Cause of a Fallback; nil otherwise.
}

// Options configures Run.
type Options struct {
	// Input is the raw document, before trimming.
	Input string
	// Translator performs the remote call. Nil means no credential is
	// configured and the input is passed through.
	Translator *Translator
	// Logger receives notices. Nil discards them.
	Logger *slog.Logger
}

// Run applies the fallback policy: empty input yields empty output, a
// missing translator passes the input through, and any translation error
// falls back to the input. Run never fails.
func Run(ctx context.Context, opts Options) Result {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	input := opts.Input
	if !utf8.ValidString(input) {
		log.WarnContext(ctx, "input is not valid UTF-8, replacing invalid bytes")
		input = strings.ToValidUTF8(input, string(utf8.RuneError))
	}

	body := strings.TrimSpace(input)
	if body == "" {
		return Result{Outcome: Empty}
	}

	if opts.Translator == nil {
		return Result{Outcome: Passthrough, Output: body}
	}

	translated, err := opts.Translator.Translate(ctx, body)
	if err != nil {
		return Result{Outcome: Fallback, Output: body, Err: err}
	}

	return Result{Outcome: Translated, Output: translated}
}
