package pipeline

import (
	"context"
	"fmt"
	"io"
	"slices"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/chartframe/pkg/dag"
	"github.com/matzehuels/chartframe/pkg/errors"
	"github.com/matzehuels/chartframe/pkg/memo"
	"github.com/matzehuels/chartframe/pkg/observability"
	"github.com/matzehuels/chartframe/pkg/textmeasure"
)

// ErrClosed is returned by [Controller.Compute] after [Controller.Close].
var ErrClosed = errors.New(errors.ErrCodeInvalidInput, "controller is closed")

// Options configures a [Controller]. Zero fields get defaults.
type Options struct {
	// InstanceID keys the controller's cache entries. Defaults to a new
	// random UUID.
	InstanceID string

	// Cache stores stage outputs. Controllers may share a cache; their
	// entries never mix. Defaults to a private cache.
	Cache *memo.Cache

	// Measurer measures labels. Defaults to the embedded Go fonts.
	Measurer textmeasure.Measurer

	// Logger receives stage recomputes at debug level. Defaults to a
	// logger that discards everything.
	Logger *log.Logger
}

// Controller runs layout passes for one chart instance.
//
// Passes of one controller are serialized. Close the controller to drop
// its cache entries.
type Controller struct {
	id       string
	cache    *memo.Cache
	measurer textmeasure.Measurer
	logger   *log.Logger

	graph *dag.DAG
	order []string

	mu     sync.Mutex
	closed bool
}

// New creates a controller.
func New(opts Options) *Controller {
	if opts.InstanceID == "" {
		opts.InstanceID = uuid.NewString()
	}
	if opts.Cache == nil {
		opts.Cache = memo.New()
	}
	if opts.Measurer == nil {
		opts.Measurer = textmeasure.NewFontMeasurer()
	}
	if opts.Logger == nil {
		opts.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	g := StageGraph()
	order, err := g.Order()
	if err != nil {
		panic(fmt.Sprintf("pipeline: stage graph: %v", err))
	}
	return &Controller{
		id:       opts.InstanceID,
		cache:    opts.Cache,
		measurer: opts.Measurer,
		logger:   opts.Logger,
		graph:    g,
		order:    order,
	}
}

// ID returns the instance id.
func (c *Controller) ID() string { return c.id }

// Stages returns the stage names in run order.
func (c *Controller) Stages() []string { return append([]string(nil), c.order...) }

// Compute runs one layout pass. Configuration errors fail the pass and are
// returned wrapped with the stage name; match them with errors.Is from
// pkg/errors. The context is only checked before the pass starts.
func (c *Controller) Compute(ctx context.Context, in Inputs) (out *Output, err error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil, ErrClosed
	}

	start := time.Now()
	fps, err := plan(c.graph, c.order, in)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidSpec, err, "inputs cannot be fingerprinted")
	}

	p := &pass{
		c:   c,
		ctx: ctx,
		in:  in,
		fps: fps,
		out: &Output{
			InstanceID: c.id,
			Stats:      Stats{Stages: map[string]time.Duration{}},
			CacheInfo:  CacheInfo{Stages: c.Stages(), Hits: map[string]bool{}},
		},
	}
	defer func() {
		if rerr := p.release(); rerr != nil && err == nil {
			out, err = nil, rerr
		}
	}()

	for _, stage := range measuring {
		if _, ok := c.cache.Lookup(c.id, stage, fps[stage]); !ok {
			if _, err := p.surface(); err != nil {
				return nil, err
			}
			break
		}
	}

	for _, stage := range c.order {
		if err := runners[stage](p); err != nil {
			c.logger.Debug("layout pass failed",
				"instance", c.id,
				"stage", stage,
				"subject", errors.SubjectOf(err),
				"skipped", c.dependents(stage))
			return nil, err
		}
	}

	p.out.Stats.Total = time.Since(start)
	c.logger.Debug("layout pass",
		"instance", c.id,
		"recomputed", len(p.out.CacheInfo.Recomputed()),
		"duration", p.out.Stats.Total)
	return p.out, nil
}

// dependents lists the stages that read the output of stage, directly or
// through other stages.
func (c *Controller) dependents(stage string) []string {
	return slices.DeleteFunc(c.graph.Downstream(stage), func(s string) bool { return s == stage })
}

// Close drops the controller's cache entries. Later passes fail with
// ErrClosed.
func (c *Controller) Close(ctx context.Context) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return 0
	}
	c.closed = true
	return c.cache.Teardown(ctx, c.id)
}

// pass is the state of one Compute call.
type pass struct {
	c   *Controller
	ctx context.Context
	in  Inputs
	fps map[string]memo.Fingerprint
	out *Output

	s textmeasure.Surface
}

// surface returns the pass's text surface, acquiring it on first use.
func (p *pass) surface() (textmeasure.Surface, error) {
	if p.s != nil {
		return p.s, nil
	}
	s, err := p.c.measurer.Acquire()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "text surface unavailable")
	}
	observability.Measure().OnSurfaceAcquire(p.ctx, p.c.id)
	p.s = s
	return s, nil
}

func (p *pass) release() error {
	if p.s == nil {
		return nil
	}
	err := p.s.Release()
	observability.Measure().OnSurfaceRelease(p.ctx, p.c.id, err)
	p.s = nil
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "text surface release failed")
	}
	return nil
}

// run computes one stage unless its fingerprint is unchanged.
func run[T any](p *pass, stage string, compute func() (T, error)) (T, error) {
	v, hit, err := memo.Do(p.ctx, p.c.cache, p.c.id, stage, p.fps[stage], func() (T, error) {
		observability.Stage().OnStageStart(p.ctx, p.c.id, stage)
		start := time.Now()
		v, err := compute()
		d := time.Since(start)
		observability.Stage().OnStageComplete(p.ctx, p.c.id, stage, d, err)
		p.out.Stats.Stages[stage] = d
		if err == nil {
			p.c.logger.Debug("recomputed", "stage", stage, "duration", d)
		}
		return v, err
	})
	if err != nil {
		var zero T
		return zero, fmt.Errorf("%s: %w", stage, err)
	}
	p.out.CacheInfo.Hits[stage] = hit
	return v, nil
}
