package runner

import (
	"errors"

	"github.com/bdtaunu/graphtruth/graphemitter"
	"github.com/bdtaunu/graphtruth/particletable"
	"go.uber.org/zap"
)

// Sentinel errors for runner operations. Every component error it wraps
// (arraydecode, blockindex, edgeassembler, graphbuilder, mcpruner,
// truthmatcher) is still reachable via errors.Is on the wrapped cause.
var (
	// ErrFieldError indicates a record's field could not be decoded into
	// the shape a downstream component expects.
	ErrFieldError = errors.New("runner: field decode error")

	// ErrShapeError indicates two parallel seed sequences for a
	// final-state family disagreed in length.
	ErrShapeError = errors.New("runner: seed sequence shape mismatch")
)

// finalStateFamilies are the block names carrying detector-level
// final-state match seeds (§4.7 Seeds, §6 Input column sets). "y" and the
// other composite families are excluded: they are not seeded directly,
// they receive a match only by bottom-up propagation.
var finalStateFamilies = []string{"h", "l", "gamma"}

// Stats accumulates per-batch counters across a single Run* call, logged
// as one summary line when the batch completes (§1 AMBIENT STACK).
type Stats struct {
	Processed int
	Skipped   int
	MatchedY  int
}

// Runner orchestrates the per-record pipeline (§4.9): decode, build,
// prune, match, emit. One Runner is reused across every record of a
// batch; it carries no per-event state between calls.
type Runner struct {
	logger    *zap.Logger
	particles *particletable.Table
	style     graphemitter.Style
}

// Option configures a Runner at construction time.
type Option func(*Runner)

// WithStyle overrides the default GraphEmitter style used for --examine
// output. Unused if the caller never passes an examine writer to a Run*
// method.
func WithStyle(style graphemitter.Style) Option {
	return func(r *Runner) {
		r.style = style
	}
}

// New constructs a Runner. particles may be nil, in which case --examine
// output labels vertices by raw pid (graphemitter.DirectLabelSource).
func New(logger *zap.Logger, particles *particletable.Table, opts ...Option) *Runner {
	r := &Runner{
		logger:    logger,
		particles: particles,
		style:     graphemitter.DefaultStyle(),
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// labelSource resolves the emitter label source for --examine output:
// the particle table if one was supplied, else raw pid.
func (r *Runner) labelSource() graphemitter.LabelSource {
	if r.particles != nil {
		return r.particles
	}

	return graphemitter.DirectLabelSource{}
}
