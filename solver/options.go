package solver

import (
	"go.uber.org/zap"

	"github.com/solvomatic/solvomatic/core"
)

// Option configures a solve run, following the teacher's functional-option
// pattern (builder.Option / core.GraphOption).
type Option func(*config)

type config struct {
	logger *zap.SugaredLogger
	onStep func(StepInfo)
	// onTable, when set, holds a func(*core.Table[V]) for the caller's V.
	// It is stored as any because config itself is not generic; Solve[V]
	// type-asserts it back before calling, keeping the core solver package
	// free of any serialization dependency (SPEC_FULL.md §2).
	onTable any
}

func newConfig(opts []Option) *config {
	cfg := &config{logger: zap.NewNop().Sugar()}
	for _, o := range opts {
		o(cfg)
	}
	return cfg
}

// WithLogger sets the structured logger Simplify/Solve emit step traces to.
// The default is a no-op logger.
func WithLogger(l *zap.SugaredLogger) Option {
	return func(c *config) { c.logger = l }
}

// WithOnStep registers a callback fired once after Solve's initial Simplify
// and once per accepted speculative merge (spec.md §4.4, §5). The Simplify
// runs on candidate merges that are not accepted do not fire it.
func WithOnStep(fn func(StepInfo)) Option {
	return func(c *config) { c.onStep = fn }
}

// WithOnTable registers a callback fired with the current table alongside
// every StepInfo, for callers that want to snapshot table state (e.g. the
// CLI's --dump-state, SPEC_FULL.md §2) without the solver package itself
// depending on a serialization library.
func WithOnTable[V core.Value](fn func(*core.Table[V])) Option {
	return func(c *config) { c.onTable = fn }
}

// reportStep logs info, fires OnStep, and — if the caller registered a
// typed OnTable callback matching V — fires that too.
func reportStep[V core.Value](cfg *config, t *core.Table[V], info StepInfo) {
	cfg.logger.Infow("step",
		"n", info.Step,
		"kind", info.Kind.String(),
		"partitions", info.Partitions,
		"size", info.Size,
		"possibilities", info.Possibilities.String(),
	)
	if cfg.onStep != nil {
		cfg.onStep(info)
	}
	if fn, ok := cfg.onTable.(func(*core.Table[V])); ok && fn != nil {
		fn(t)
	}
}
