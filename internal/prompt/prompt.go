// Package prompt implements the "make another robot?" question asked
// between builds.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/specialistvlad/robotbuilder/internal/ctxlog"
)

// Question is the text shown before each build.
const Question = "Wanna make a robot? (yes, y, no, [n]) "

// Continuer decides whether another build should start.
type Continuer interface {
	Continue(ctx context.Context) (bool, error)
}

// IsYes reports whether answer begins with a case-insensitive "y".
// Anything else, including an empty answer, means no.
func IsYes(answer string) bool {
	return strings.HasPrefix(strings.ToLower(answer), "y")
}

// Terminal asks a human on an input/output pair.
type Terminal struct {
	in  *bufio.Reader
	out io.Writer
}

// NewTerminal returns a Terminal reading answers from in and writing the
// question to out.
func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{in: bufio.NewReader(in), out: out}
}

// Continue asks the question and reads one line. End of input counts as no.
func (t *Terminal) Continue(ctx context.Context) (bool, error) {
	if _, err := fmt.Fprint(t.out, Question); err != nil {
		return false, fmt.Errorf("failed to write prompt: %w", err)
	}

	line, err := t.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("failed to read answer: %w", err)
	}
	answer := strings.TrimRight(line, "\r\n")
	yes := IsYes(answer)
	ctxlog.FromContext(ctx).Debug("Continuation answer read.", "answer", answer, "continue", yes)
	return yes, nil
}

// Counted answers yes a fixed number of times and then no, for scripted
// runs.
type Counted struct {
	remaining int
}

// NewCounted returns a Counted that allows n builds.
func NewCounted(n int) *Counted {
	return &Counted{remaining: n}
}

// Continue reports whether builds remain.
func (c *Counted) Continue(context.Context) (bool, error) {
	if c.remaining <= 0 {
		return false, nil
	}
	c.remaining--
	return true, nil
}
