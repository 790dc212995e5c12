package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	vnerrors "github.com/matzehuels/vonneumann/pkg/errors"
	"github.com/matzehuels/vonneumann/pkg/observability"
	"github.com/matzehuels/vonneumann/pkg/ordinal"
	"github.com/matzehuels/vonneumann/pkg/render/sink"
)

// Runner executes the pipeline and reports progress to its logger and to the
// registered [observability.RenderHooks].
//
// The Runner is stateless except for the logger - it doesn't store pipeline
// results. Multiple goroutines can safely use the same Runner with different
// options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute draws opts.N, renders every requested artifact, and writes them
// under opts.OutputDir. Nothing is written when the walk fails.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	hooks := observability.Render()
	result := &Result{Artifacts: make(map[string][]byte)}

	walkStart := time.Now()
	exported := false
	scene := sink.NewScene(sink.WithExportFunc(func(name string, s *sink.Scene) error {
		exported = true
		result.Stats.WalkTime = time.Since(walkStart)
		hooks.OnWalkComplete(ctx, opts.N, len(s.Circles), result.Stats.WalkTime, nil)

		opts.Logger.Info("drew ordinal",
			"n", opts.N,
			"predicate", opts.Predicate,
			"circles", len(s.Circles),
			"depth", s.MaxDepth(),
			"duration", result.Stats.WalkTime)

		return r.export(ctx, s, opts, result)
	}))

	hooks.OnWalkStart(ctx, opts.N)
	drawn, err := ordinal.Draw(opts.N, opts.Pred, opts.Palette, scene, ordinal.WithMaxValue(opts.MaxValue))
	if err != nil {
		if !exported {
			hooks.OnWalkComplete(ctx, opts.N, len(scene.Circles), time.Since(walkStart), err)
		}
		return nil, err
	}

	result.Draw = drawn
	result.Stats.Circles = drawn.Circles
	result.Stats.MaxDepth = scene.MaxDepth()
	return result, nil
}

// Rerender renders and writes a scene that was recorded earlier, typically
// one read back with [sink.ReadJSON]. Only the render and write options of
// opts are used.
func (r *Runner) Rerender(ctx context.Context, s *sink.Scene, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}
	if len(s.Circles) == 0 {
		return nil, vnerrors.New(vnerrors.ErrCodeInvalidArgument, "scene %q has no circles", s.Name)
	}
	if err := validateSceneName(s.Name); err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if opts.Palette == (ordinal.Palette{}) {
		opts.Palette = s.Palette
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := &Result{
		Artifacts: make(map[string][]byte),
		Draw: ordinal.Result{
			N:        s.Circles[0].Value,
			Name:     s.Name,
			Circles:  len(s.Circles),
			Viewport: s.Bounds(),
			Radius:   s.Circles[0].Radius,
		},
	}
	result.Stats.Circles = len(s.Circles)
	result.Stats.MaxDepth = s.MaxDepth()

	if err := r.export(ctx, s, opts, result); err != nil {
		return nil, err
	}
	return result, nil
}

// export renders the scene and writes the artifacts, recording both in result.
func (r *Runner) export(ctx context.Context, s *sink.Scene, opts Options, result *Result) (err error) {
	start := time.Now()
	defer func() {
		observability.Render().OnExportComplete(ctx, s.Name, opts.Formats, time.Since(start), err)
	}()

	artifacts, err := Render(s, opts)
	if err != nil {
		return err
	}
	result.Stats.RenderTime = time.Since(start)
	for _, a := range artifacts {
		result.Artifacts[a.File] = a.Data
	}

	opts.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"views", opts.VizTypes,
		"duration", result.Stats.RenderTime)

	writeStart := time.Now()
	files, err := Write(ctx, opts.OutputDir, artifacts)
	result.Files = files
	result.Stats.WriteTime = time.Since(writeStart)
	if err != nil {
		return err
	}
	for _, f := range files {
		opts.Logger.Debug("wrote file", "path", f)
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
