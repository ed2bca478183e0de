package builder

import (
	"context"
	"fmt"

	"github.com/specialistvlad/robotbuilder/internal/ctxlog"
	"github.com/specialistvlad/robotbuilder/internal/dice"
	"github.com/specialistvlad/robotbuilder/internal/robot"
)

// Builder assembles robots. A Builder may run many builds in sequence; each
// build owns its own counts.
type Builder struct {
	source      dice.Source
	reporter    Reporter
	target      robot.Counts
	safetyLimit int
	diagnose    bool
}

// Option configures a Builder.
type Option func(*Builder)

// WithTarget overrides the quantities of a complete robot.
func WithTarget(target robot.Counts) Option {
	return func(b *Builder) { b.target = target }
}

// WithSafetyLimit overrides DefaultSafetyLimit.
func WithSafetyLimit(limit int) Option {
	return func(b *Builder) { b.safetyLimit = limit }
}

// WithDiagnostics enables MismatchReporter callbacks.
func WithDiagnostics(enabled bool) Option {
	return func(b *Builder) { b.diagnose = enabled }
}

// New returns a Builder rolling from source and reporting to reporter.
func New(source dice.Source, reporter Reporter, opts ...Option) *Builder {
	b := &Builder{
		source:      source,
		reporter:    reporter,
		target:      robot.Maxima(),
		safetyLimit: DefaultSafetyLimit,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// roll draws a part type with equal probability for each face.
func (b *Builder) roll() robot.PartType {
	return robot.PartType(b.source.IntN(robot.NumParts))
}

// Build runs one build to completion. When the roll count exceeds the safety
// limit it returns a Result in AbortedSafety and an error wrapping
// ErrSafetyLimit.
func (b *Builder) Build(ctx context.Context) (Result, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Build started.", "target", b.target.String(), "safety_limit", b.safetyLimit)

	res := Result{State: InProgress}
	if robot.IsComplete(res.Counts, b.target) {
		res.State = Completed
	}

	for res.State == InProgress {
		part := b.roll()
		res.Rolls++

		if robot.CanAdd(part, res.Counts, b.target) {
			res.Counts.Add(part)
			logger.Debug("Part added.", "part", part.String(), "counts", res.Counts.String(), "rolls", res.Rolls)
			if b.reporter != nil {
				b.reporter.PartAdded(Addition{Part: part, Counts: res.Counts, Rolls: res.Rolls})
			}
			b.diagnostic(res.Counts)

			if robot.IsComplete(res.Counts, b.target) {
				res.State = Completed
				break
			}
		} else {
			logger.Debug("Roll wasted.", "part", part.String(), "rolls", res.Rolls)
		}

		if res.Rolls > b.safetyLimit {
			res.State = AbortedSafety
		}
	}

	if res.State == AbortedSafety {
		logger.Error("Build abandoned.", "rolls", res.Rolls, "counts", res.Counts.String())
		return res, fmt.Errorf("build abandoned after %d rolls: %w", res.Rolls, ErrSafetyLimit)
	}

	logger.Info("Robot completed.", "rolls", res.Rolls)
	if b.reporter != nil {
		b.reporter.Completed(res)
	}
	return res, nil
}

func (b *Builder) diagnostic(counts robot.Counts) {
	if !b.diagnose {
		return
	}
	mr, ok := b.reporter.(MismatchReporter)
	if !ok {
		return
	}
	if part, mismatch := robot.FirstMismatch(counts, b.target); mismatch {
		mr.Mismatch(part, counts, b.target)
	}
}
