package runner

import (
	"errors"

	"github.com/bdtaunu/graphtruth/arraydecode"
	"github.com/bdtaunu/graphtruth/blockindex"
	"github.com/bdtaunu/graphtruth/edgeassembler"
	"github.com/bdtaunu/graphtruth/graphbuilder"
	"github.com/bdtaunu/graphtruth/mcpruner"
	"github.com/bdtaunu/graphtruth/recordsource"
	"github.com/bdtaunu/graphtruth/truthmatcher"
)

// classifyError resolves err to the component sentinel it wraps (§7: the
// Runner logs "the event_id and error kind"), walking the chain with
// errors.Is rather than inspecting err's formatted text. A field decode
// failure satisfies both this package's ErrFieldError and the component
// sentinel it wraps; component sentinels are checked first, so the more
// specific kind wins.
func classifyError(err error) string {
	switch {
	case errors.Is(err, arraydecode.ErrMalformedArray):
		return "MalformedArray"
	case errors.Is(err, arraydecode.ErrNumberFormat):
		return "NumberFormat"
	case errors.Is(err, blockindex.ErrConfigError):
		return "ConfigError"
	case errors.Is(err, blockindex.ErrShapeError),
		errors.Is(err, edgeassembler.ErrShapeError),
		errors.Is(err, graphbuilder.ErrShapeError),
		errors.Is(err, truthmatcher.ErrShapeError),
		errors.Is(err, ErrShapeError):
		return "ShapeError"
	case errors.Is(err, blockindex.ErrRangeError),
		errors.Is(err, edgeassembler.ErrRangeError),
		errors.Is(err, graphbuilder.ErrRangeError):
		return "RangeError"
	case errors.Is(err, graphbuilder.ErrUnresolvedDaughter):
		return "UnresolvedDaughter"
	case errors.Is(err, mcpruner.ErrRootMissing):
		return "RootMissing"
	case errors.Is(err, mcpruner.ErrGraphInvariant),
		errors.Is(err, truthmatcher.ErrGraphInvariant):
		return "GraphInvariant"
	case errors.Is(err, recordsource.ErrUnknownField):
		return "UnknownField"
	case errors.Is(err, recordsource.ErrSourceError):
		return "SourceError"
	case errors.Is(err, ErrFieldError):
		return "FieldError"
	default:
		return "unknown"
	}
}
