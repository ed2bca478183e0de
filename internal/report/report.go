// Package report renders build progress as human-readable lines.
package report

import (
	"fmt"
	"io"

	"github.com/specialistvlad/robotbuilder/internal/builder"
	"github.com/specialistvlad/robotbuilder/internal/robot"
)

// Printer writes build progress to an io.Writer. It satisfies
// builder.Reporter and builder.MismatchReporter. Write errors are sticky:
// the first one is kept and later output is dropped.
type Printer struct {
	w   io.Writer
	err error
}

var (
	_ builder.Reporter         = (*Printer)(nil)
	_ builder.MismatchReporter = (*Printer)(nil)
)

// New returns a Printer writing to w.
func New(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Err returns the first write error, if any.
func (p *Printer) Err() error {
	return p.err
}

func (p *Printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

// PartAdded prints the part, the updated counts and the rolls so far.
func (p *Printer) PartAdded(a builder.Addition) {
	p.printf("Added index %d = %s!\n", a.Part.Index(), a.Part)
	p.printf("Robot is now %s\n", a.Counts)
	p.printf("Rolls so far: %d\n\n", a.Rolls)
}

// Completed prints the roll total and the final counts in display order.
func (p *Printer) Completed(res builder.Result) {
	p.printf("Finally, a completed robot. Only took %d rolls.\n", res.Rolls)
	p.Robot(res.Counts)
	p.printf("\n")
}

// Robot prints one "Name: count" line per part type.
func (p *Printer) Robot(c robot.Counts) {
	for _, part := range robot.Parts() {
		p.printf("%s: %d\n", part, c.Get(part))
	}
}

// Mismatch prints the completion diagnostic.
func (p *Printer) Mismatch(part robot.PartType, counts, target robot.Counts) {
	p.printf("(COMPLETE?) mismatch on index %d (%s)\n", part.Index(), part)
	p.printf("(COMPLETE?) %s\n", counts)
	p.printf("(COMPLETE?) %s\n", target)
}
