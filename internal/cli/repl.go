package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/aretw0/switchyard/internal/logging"
	"github.com/aretw0/switchyard/pkg/domain"
	"github.com/aretw0/switchyard/pkg/fsm"
)

// Runner drives a machine from line oriented input.
// Each prompt lists the current rules. A line naming a current trigger (or its label) selects
// it; otherwise a number selects by index. Trigger names win, so a trigger called "2" is
// picked by name even when a second option exists.
type Runner struct {
	Input  io.Reader
	Output io.Writer
	// Label maps state and trigger identifiers to display phrases. Optional.
	Label  func(string) string
	Logger *slog.Logger
}

// Run loops until the machine terminates or the input ends. exit and quit end it early.
// Rejected selections reprompt and never move the cursor.
func (r *Runner) Run(ctx context.Context, m *fsm.Machine) error {
	logger := r.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	readCtx, stop := context.WithCancel(ctx)
	defer stop()
	in := r.lines(readCtx)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if m.IsTerminal() {
			r.system("Finished %s.", r.label(string(m.Current())))
			return nil
		}

		rules := m.Permitted()
		if len(rules) == 0 {
			r.system("No way out of %s.", r.label(string(m.Current())))
			return nil
		}

		fmt.Fprintf(r.Output, "\nYou are %s.\n", r.label(string(m.Current())))
		for i, rule := range rules {
			fmt.Fprintf(r.Output, "  %d. %s\n", i+1, r.label(string(rule.Trigger)))
		}

		trigger, quit, err := r.read(ctx, in, rules)
		if err != nil {
			return err
		}
		if quit {
			r.system("Session ended at %s.", r.label(string(m.Current())))
			return nil
		}
		if trigger == "" {
			continue
		}

		if err := m.Fire(ctx, trigger); err != nil {
			if fsm.IsIllegal(err) {
				logger.Debug("selection rejected", "state", m.Current(), "trigger", trigger)
				r.system("Cannot %s while %s.", r.label(string(trigger)), r.label(string(m.Current())))
				continue
			}
			return err
		}
	}
}

// input carries lines read from Runner.Input. err is set before the channel closes.
type input struct {
	ch  chan string
	err error
}

// lines scans Input on its own goroutine so a blocked read never delays cancellation.
func (r *Runner) lines(ctx context.Context) *input {
	in := &input{ch: make(chan string)}
	go func() {
		defer close(in.ch)
		scanner := bufio.NewScanner(r.Input)
		for scanner.Scan() {
			select {
			case in.ch <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		in.err = scanner.Err()
	}()
	return in
}

// read returns the selected trigger, or quit on exit commands and end of input.
// An empty trigger means the line could not be resolved and the prompt repeats.
func (r *Runner) read(ctx context.Context, in *input, rules []domain.Rule) (domain.Trigger, bool, error) {
	fmt.Fprint(r.Output, "> ")

	var raw string
	select {
	case <-ctx.Done():
		return "", false, ctx.Err()
	case l, ok := <-in.ch:
		if !ok {
			if in.err != nil && !errors.Is(in.err, io.EOF) {
				return "", false, fmt.Errorf("input error: %w", in.err)
			}
			fmt.Fprintln(r.Output)
			return "", true, nil
		}
		raw = l
	}

	line := strings.TrimSpace(raw)
	switch strings.ToLower(line) {
	case "":
		return "", false, nil
	case "exit", "quit", "q":
		return "", true, nil
	}

	for _, rule := range rules {
		if line == string(rule.Trigger) || strings.EqualFold(line, r.label(string(rule.Trigger))) {
			return rule.Trigger, false, nil
		}
	}

	if n, err := strconv.Atoi(line); err == nil {
		if n < 1 || n > len(rules) {
			r.system("Pick a number between 1 and %d.", len(rules))
			return "", false, nil
		}
		return rules[n-1].Trigger, false, nil
	}
	// Unknown names still go through the table so the rejection is reported uniformly.
	return domain.Trigger(line), false, nil
}

func (r *Runner) label(id string) string {
	if r.Label == nil {
		return id
	}
	return r.Label(id)
}

// system prints a standardized system message.
func (r *Runner) system(format string, args ...any) {
	fmt.Fprintf(r.Output, ">>> %s\n", fmt.Sprintf(format, args...))
}
