// Package app implements the application layer for keydiff.
package app

import (
	"context"
	"errors"
	"io"
	"os"
	"runtime"

	"go.trai.ch/keydiff/internal/adapters/telemetry" //nolint:depguard // Verbose tracing is wired in the app layer
	"go.trai.ch/keydiff/internal/core/domain"
	"go.trai.ch/keydiff/internal/core/ports"
	"go.trai.ch/keydiff/internal/engine/differ"
	"go.trai.ch/keydiff/internal/engine/extractor"
	"go.trai.ch/keydiff/internal/engine/resolver"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Phase names, used as span names.
const (
	PhaseLoadRules   = "rules.load"
	PhaseResolve     = "files.resolve"
	PhaseExtractKeys = "keys.extract"
	PhaseDiff        = "keys.diff"
)

// App represents the main application logic.
type App struct {
	rules    ports.RuleLoader
	fs       ports.FileSystem
	resolver *resolver.Resolver
	renderer ports.ReportRenderer
	logger   ports.Logger
	tracer   ports.Tracer
	workers  int
}

// New creates a new App instance.
func New(
	rules ports.RuleLoader,
	fsys ports.FileSystem,
	res *resolver.Resolver,
	renderer ports.ReportRenderer,
	log ports.Logger,
	tracer ports.Tracer,
) *App {
	return &App{
		rules:    rules,
		fs:       fsys,
		resolver: res,
		renderer: renderer,
		logger:   log,
		tracer:   tracer,
		workers:  runtime.NumCPU(),
	}
}

// WithWorkers bounds the number of files read concurrently.
func (a *App) WithWorkers(n int) *App {
	if n > 0 {
		a.workers = n
	}
	return a
}

// CompareOptions configures a comparison.
// Files selects explicit mode; otherwise SearchPath is scanned for names matching SearchPattern.
type CompareOptions struct {
	Files         []string
	SearchPath    string
	SearchPattern string
	IgnoreFile    string
	Format        domain.OutputFormat
	Output        io.Writer
	Verbose       bool
	LogJSON       bool
}

// Compare resolves the files, compares their top-level keys and renders the report.
// When any file is missing keys, the report is returned together with an error
// matching domain.ErrDriftDetected.
func (a *App) Compare(ctx context.Context, opts CompareOptions) (*domain.Report, error) {
	if opts.LogJSON {
		if s, ok := a.logger.(interface{ SetJSON(bool) }); ok {
			s.SetJSON(true)
		}
	}

	tracer := a.tracer
	if opts.Verbose {
		verbose := telemetry.NewSDKTracer(telemetry.InstrumentationName, telemetry.NewLogBridge(a.logger))
		defer func() {
			_ = verbose.Shutdown(context.WithoutCancel(ctx))
		}()
		tracer = verbose
	}

	var rules *domain.IgnoreRuleSet
	err := runPhase(ctx, tracer, PhaseLoadRules, func(_ context.Context, span ports.Span) error {
		var err error
		rules, err = a.rules.Load(opts.IgnoreFile)
		if err != nil {
			return err
		}
		span.SetAttribute("rules", rules.Len())
		return nil
	})
	if err != nil {
		return nil, err
	}

	var files []string
	err = runPhase(ctx, tracer, PhaseResolve, func(ctx context.Context, span ports.Span) error {
		var err error
		files, err = a.resolver.Resolve(ctx, resolver.Request{
			Files:         opts.Files,
			SearchPath:    opts.SearchPath,
			SearchPattern: opts.SearchPattern,
		})
		if err != nil {
			return err
		}
		span.SetAttribute("files", len(files))
		return nil
	})
	if err != nil {
		return nil, err
	}

	var contents *domain.ContentMap
	err = runPhase(ctx, tracer, PhaseExtractKeys, func(ctx context.Context, span ports.Span) error {
		var err error
		contents, err = a.extractKeys(ctx, files)
		if err != nil {
			return err
		}
		span.SetAttribute("workers", a.workers)
		return nil
	})
	if err != nil {
		return nil, err
	}

	var report *domain.Report
	_ = runPhase(ctx, tracer, PhaseDiff, func(_ context.Context, span ports.Span) error {
		report = differ.Diff(contents, rules)
		span.SetAttribute("drift", report.HasDrift())
		span.SetAttribute("files_with_drift", report.Len())
		return nil
	})

	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	if err := a.renderer.Render(out, report, opts.Format); err != nil {
		return report, err
	}

	if report.HasDrift() {
		return report, zerr.With(zerr.Wrap(domain.ErrDriftDetected, "key drift detected"), "files", report.Len())
	}
	return report, nil
}

// extractKeys reads and parses files concurrently.
// The content map follows the order of files regardless of completion order.
func (a *App) extractKeys(ctx context.Context, files []string) (*domain.ContentMap, error) {
	keys := make([][]string, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.workers)

	for i, path := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			data, err := a.fs.ReadFile(path)
			if err != nil {
				if !errors.Is(err, domain.ErrDocumentReadFailed) {
					err = zerr.With(zerr.Wrap(domain.ErrDocumentReadFailed, err.Error()), "path", path)
				}
				return err
			}

			extracted, err := extractor.Extract(path, data)
			if err != nil {
				return err
			}
			keys[i] = extracted
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	contents := domain.NewContentMap()
	for i, path := range files {
		contents.Set(path, keys[i])
	}
	return contents, nil
}

func runPhase(
	ctx context.Context,
	tracer ports.Tracer,
	name string,
	fn func(context.Context, ports.Span) error,
) error {
	ctx, span := tracer.Start(ctx, name)
	defer span.End()

	if err := fn(ctx, span); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}
