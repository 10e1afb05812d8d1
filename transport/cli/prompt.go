package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/term"

	"tzconv/shared/constant"
	"tzconv/shared/failure"
	"tzconv/transport/cli/response"
)

var (
	errInputClosed     = errors.New("input closed before a zone was chosen")
	errTooManyAttempts = errors.New("too many unusable answers")
)

// Prompt asks for one zone on a line-oriented terminal. The menu goes to out so
// that stdout only ever carries results.
type Prompt struct {
	in          *bufio.Reader
	out         io.Writer
	interactive bool
	maxAttempts int
}

func NewPrompt(in io.Reader, out io.Writer, interactive bool) *Prompt {
	return &Prompt{
		in:          bufio.NewReader(in),
		out:         out,
		interactive: interactive,
		maxAttempts: constant.MaxSelectionAttempts,
	}
}

// NewStdPrompt reads stdin and writes the menu to stderr. The full menu is only
// rendered when stdin is a terminal.
func NewStdPrompt() *Prompt {
	return NewPrompt(os.Stdin, os.Stderr, term.IsTerminal(int(os.Stdin.Fd())))
}

// Select blocks until the user picks a zone from zones. An answer can be a menu
// number, an exact zone name or a case-insensitive filter.
func (p *Prompt) Select(ctx context.Context, zones []string) (string, error) {
	if len(zones) == 0 {
		return constant.Empty, failure.ZoneCatalogUnavailable(nil) //nolint:wrapcheck
	}

	candidates := zones
	showMenu := p.interactive

	for attempt := 0; attempt < p.maxAttempts; {
		if showMenu {
			p.render(candidates)
		}

		p.printf("Select a time zone [1-%d, name or filter]: ", len(candidates))

		answer, err := p.readLine(ctx)
		if err != nil {
			return constant.Empty, err
		}

		if zone, ok := pick(zones, candidates, answer); ok {
			log.Debug().Str(constant.LogFieldZone, zone).Msg("Zone selected")

			return zone, nil
		}

		if narrowed := filter(zones, answer); len(narrowed) > 1 {
			candidates = narrowed
			showMenu = true

			continue
		}

		attempt++

		response.WithWarning(p.out, unusable(answer))
	}

	return constant.Empty, failure.InteractiveSelectionFailed(errTooManyAttempts) //nolint:wrapcheck
}

func (p *Prompt) render(zones []string) {
	for i, zone := range zones {
		p.printf("%4d) %s\n", i+1, zone)
	}
}

// readLine waits for one line of input or for ctx to be cancelled, whichever
// comes first.
func (p *Prompt) readLine(ctx context.Context) (string, error) {
	type line struct {
		text string
		err  error
	}

	lines := make(chan line, 1)

	go func() {
		text, err := p.in.ReadString('\n')
		lines <- line{text: text, err: err}
	}()

	select {
	case <-ctx.Done():
		return constant.Empty, failure.Interrupted(ctx.Err()) //nolint:wrapcheck
	case l := <-lines:
		text := strings.TrimSpace(l.text)

		switch {
		case l.err == nil:
			return text, nil
		case errors.Is(l.err, io.EOF) && text != constant.Empty:
			return text, nil
		case errors.Is(l.err, io.EOF):
			return constant.Empty, failure.InteractiveSelectionFailed(errInputClosed) //nolint:wrapcheck
		default:
			return constant.Empty, failure.InteractiveSelectionFailed(fmt.Errorf("reading answer: %w", l.err)) //nolint:wrapcheck
		}
	}
}

func (p *Prompt) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(p.out, format, args...); err != nil {
		log.Debug().Err(err).Msg("Failed to write prompt")
	}
}

// pick resolves answer to a zone. Numbers index the menu currently shown;
// names match the whole catalog; a filter with a single hit selects it.
func pick(zones, candidates []string, answer string) (string, bool) {
	if answer == constant.Empty {
		return constant.Empty, false
	}

	if n, err := strconv.Atoi(answer); err == nil {
		if n >= 1 && n <= len(candidates) {
			return candidates[n-1], true
		}

		return constant.Empty, false
	}

	for _, zone := range zones {
		if strings.EqualFold(zone, answer) {
			return zone, true
		}
	}

	if matches := filter(zones, answer); len(matches) == 1 {
		return matches[0], true
	}

	return constant.Empty, false
}

func filter(zones []string, answer string) []string {
	if answer == constant.Empty {
		return nil
	}

	if _, err := strconv.Atoi(answer); err == nil {
		return nil
	}

	needle := strings.ToLower(answer)

	var matches []string

	for _, zone := range zones {
		if strings.Contains(strings.ToLower(zone), needle) {
			matches = append(matches, zone)
		}
	}

	return matches
}

func unusable(answer string) string {
	if answer == constant.Empty {
		return "please choose a zone"
	}

	if _, err := strconv.Atoi(answer); err == nil {
		return fmt.Sprintf("%s is not a number on the menu", answer)
	}

	return fmt.Sprintf("no zone matches %q", answer)
}
