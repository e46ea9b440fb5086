// Package app implements the application layer for reqcheck.
package app

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/reqwell/reqcheck/internal/adapters/detector"
	"github.com/reqwell/reqcheck/internal/adapters/render"
	"github.com/reqwell/reqcheck/internal/adapters/reqfile"
	"github.com/reqwell/reqcheck/internal/adapters/tui"
	"github.com/reqwell/reqcheck/internal/adapters/watcher"
	"github.com/reqwell/reqcheck/internal/core/domain"
	"github.com/reqwell/reqcheck/internal/core/ports"
	"github.com/reqwell/reqcheck/internal/engine/linter"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	linter       *linter.Linter
	loader       ports.ManifestLoader
	resolver     ports.IncludeResolver
	configLoader ports.RuleConfigLoader
	watcher      ports.Watcher
	logger       ports.Logger
	writer       *reqfile.Writer

	stdout   io.Writer
	renderer ports.Renderer
}

// New creates a new App instance.
func New(
	lint *linter.Linter,
	loader ports.ManifestLoader,
	resolver ports.IncludeResolver,
	configLoader ports.RuleConfigLoader,
	watch ports.Watcher,
	log ports.Logger,
) *App {
	return &App{
		linter:       lint,
		loader:       loader,
		resolver:     resolver,
		configLoader: configLoader,
		watcher:      watch,
		logger:       log,
		writer:       reqfile.NewWriter(),
		stdout:       os.Stdout,
	}
}

// WithStdout redirects command output, primarily for tests.
func (a *App) WithStdout(w io.Writer) *App {
	a.stdout = w
	return a
}

// WithRenderer overrides renderer selection, primarily for tests.
func (a *App) WithRenderer(r ports.Renderer) *App {
	a.renderer = r
	return a
}

// CheckOptions configure the check command.
type CheckOptions struct {
	// Strict fails the run on warnings as well as errors.
	Strict bool

	// Watch re-checks on file changes until interrupted.
	Watch bool

	// Format selects the renderer: "text" or "json".
	Format string

	// NoCache forces re-evaluation even for unchanged files.
	NoCache bool
}

// Check lints the given manifests. It returns ErrLintFindings when any
// file fails at the effective severity threshold.
func (a *App) Check(ctx context.Context, paths []string, opts CheckOptions) error {
	rules, err := a.configLoader.Load(".")
	if err != nil {
		return zerr.Wrap(err, "failed to load rule configuration")
	}

	failAt := domain.SeverityError
	if opts.Strict {
		failAt = domain.SeverityWarning
	}

	lintOpts := linter.Options{Rules: rules, NoCache: opts.NoCache}

	renderer, interactive := a.pickRenderer(opts)

	if opts.Watch {
		return a.watchLoop(ctx, renderer, interactive, paths, lintOpts, failAt)
	}

	if err := renderer.Start(ctx); err != nil {
		return err
	}
	summary, runErr := a.runPass(ctx, renderer, paths, lintOpts, failAt)
	if err := renderer.Stop(); err != nil {
		return err
	}
	if err := renderer.Wait(); err != nil {
		return err
	}
	if runErr != nil {
		return runErr
	}
	if summary.Failed > 0 {
		return domain.ErrLintFindings
	}
	return nil
}

// pickRenderer selects the renderer for a check run. The interactive watch
// view engages only for watch runs on a terminal outside CI.
func (a *App) pickRenderer(opts CheckOptions) (ports.Renderer, bool) {
	if a.renderer != nil {
		return a.renderer, false
	}
	if detector.ResolveMode(opts.Format) == detector.ModeJSON {
		return render.NewJSONRenderer(a.stdout), false
	}
	if opts.Watch && detector.IsInteractive() {
		return tui.NewRenderer(), true
	}
	return render.NewTextRenderer(a.stdout), false
}

// runPass lints once and streams the results through the renderer.
func (a *App) runPass(ctx context.Context, renderer ports.Renderer, paths []string, opts linter.Options, failAt domain.Severity) (domain.Summary, error) {
	results, err := a.linter.Run(ctx, paths, opts)
	if err != nil {
		return domain.Summary{}, err
	}

	for _, r := range results {
		renderer.FileStarted(r.Path)
		renderer.FileResult(r)
	}
	summary := linter.Summarize(results, failAt)
	renderer.Summary(summary)
	return summary, nil
}

// watchLoop runs passes until the context is canceled or the interactive
// view quits. Watch mode never returns ErrLintFindings; findings stay on
// screen instead of terminating the loop.
func (a *App) watchLoop(ctx context.Context, renderer ports.Renderer, interactive bool, paths []string, opts linter.Options, failAt domain.Severity) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := renderer.Start(ctx); err != nil {
		return err
	}

	results, err := a.linter.Run(ctx, paths, opts)
	if err != nil {
		return err
	}
	for _, r := range results {
		renderer.FileResult(r)
	}
	renderer.Summary(linter.Summarize(results, failAt))

	// Watch every file of the include trees, not just the roots.
	// TODO: re-watch when a pass discovers new include targets.
	watched := make([]string, 0, len(results))
	for _, r := range results {
		watched = append(watched, r.Path)
	}
	if err := a.watcher.Start(ctx, watched); err != nil {
		return zerr.Wrap(err, "failed to start file watcher")
	}
	defer func() { _ = a.watcher.Stop() }()

	group, ctx := errgroup.WithContext(ctx)

	debouncer := watcher.NewDebouncer(watcher.DefaultDebounceWindow, func(changed []string) {
		for _, path := range changed {
			renderer.FileStarted(path)
		}
		passResults, passErr := a.linter.Run(ctx, paths, opts)
		if passErr != nil {
			a.logger.Error(passErr)
			return
		}
		for _, r := range passResults {
			renderer.FileResult(r)
		}
		renderer.Summary(linter.Summarize(passResults, failAt))
	})

	group.Go(func() error {
		for event := range a.watcher.Events() {
			debouncer.Add(event.Path)
		}
		return nil
	})

	group.Go(func() error {
		if interactive {
			// The view owns the session; quitting it ends the run.
			err := renderer.Wait()
			cancel()
			return err
		}
		<-ctx.Done()
		return renderer.Stop()
	})

	err = group.Wait()
	debouncer.Flush()
	if err != nil && ctx.Err() != nil {
		return nil
	}
	return err
}

// ListOptions configure the list command.
type ListOptions struct {
	// JSON emits the mapping as a JSON object instead of text lines.
	JSON bool
}

// List prints the flattened name -> constraint mapping of the given
// manifests and everything they include. Later files win on conflicts.
func (a *App) List(_ context.Context, paths []string, opts ListOptions) error {
	if len(paths) == 0 {
		return domain.ErrNoManifestsSpecified
	}

	merged := make(map[string]string)
	for _, path := range paths {
		res, err := a.resolver.Resolve(path)
		if err != nil {
			return zerr.Wrap(err, "failed to resolve "+path)
		}
		for _, p := range res.Problems {
			a.logger.Warn(p.String())
		}
		for name, constraint := range res.Graph.Flatten() {
			merged[name] = constraint
		}
	}

	if opts.JSON {
		enc := json.NewEncoder(a.stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(merged)
	}

	names := make([]string, 0, len(merged))
	for name := range merged {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if merged[name] == "" {
			fmt.Fprintln(a.stdout, name)
			continue
		}
		fmt.Fprintf(a.stdout, "%s %s\n", name, merged[name])
	}
	return nil
}

// FormatOptions configure the fmt command.
type FormatOptions struct {
	// Write rewrites files in place instead of printing to stdout.
	Write bool

	// Check reports drift without writing; drift is ErrFormatDrift.
	Check bool
}

// Format renders manifests canonically. Files with parse problems are
// refused: formatting would silently drop the lines the parser could not
// place.
func (a *App) Format(_ context.Context, paths []string, opts FormatOptions) error {
	if len(paths) == 0 {
		return domain.ErrNoManifestsSpecified
	}

	drift := false
	for _, path := range paths {
		result, err := a.loader.Load(path)
		if err != nil {
			return err
		}
		if len(result.Problems) > 0 {
			return zerr.With(zerr.With(zerr.New("cannot format file with parse problems"),
				"path", path), "first_problem", result.Problems[0].String())
		}

		formatted := a.writer.Format(result.Manifest)
		original, err := os.ReadFile(path) //nolint:gosec // path is provided by user
		if err != nil {
			return zerr.Wrap(err, "failed to read "+path)
		}
		if bytes.Equal(original, formatted) {
			continue
		}

		switch {
		case opts.Check:
			drift = true
			fmt.Fprintln(a.stdout, path)
		case opts.Write:
			if err := os.WriteFile(path, formatted, domain.FilePerm); err != nil {
				return zerr.Wrap(err, "failed to write "+path)
			}
		default:
			if _, err := a.stdout.Write(formatted); err != nil {
				return err
			}
		}
	}

	if drift {
		return domain.ErrFormatDrift
	}
	return nil
}

// Diff prints the requirement changes from one manifest to another.
func (a *App) Diff(_ context.Context, oldPath, newPath string) error {
	oldResult, err := a.loader.Load(oldPath)
	if err != nil {
		return err
	}
	newResult, err := a.loader.Load(newPath)
	if err != nil {
		return err
	}

	changes := domain.Diff(oldResult.Manifest, newResult.Manifest)
	if changes.Empty() {
		fmt.Fprintln(a.stdout, "no differences")
		return nil
	}

	for _, r := range changes.Removed {
		fmt.Fprintf(a.stdout, "- %s%s\n", r.Canonical, suffix(r.Constraint()))
	}
	for _, r := range changes.Added {
		fmt.Fprintf(a.stdout, "+ %s%s\n", r.Canonical, suffix(r.Constraint()))
	}
	for _, c := range changes.Changed {
		fmt.Fprintf(a.stdout, "~ %s %s -> %s\n", c.Name, c.Old, c.New)
	}
	return nil
}

func suffix(constraint string) string {
	if constraint == "" {
		return ""
	}
	return " " + constraint
}

// Graph prints the include tree of a manifest.
func (a *App) Graph(_ context.Context, root string) error {
	res, err := a.resolver.Resolve(root)
	if err != nil {
		return zerr.Wrap(err, "failed to resolve "+root)
	}
	for _, p := range res.Problems {
		a.logger.Warn(p.String())
	}

	var print func(path domain.InternedString, depth int)
	print = func(path domain.InternedString, depth int) {
		m := res.Graph.Manifest(path)
		for i := 0; i < depth; i++ {
			fmt.Fprint(a.stdout, "  ")
		}
		fmt.Fprintf(a.stdout, "%s (%d requirement(s))\n", path, m.Len())
		for _, inc := range res.Graph.Includes(path) {
			print(inc, depth+1)
		}
	}
	print(domain.NewInternedString(root), 0)
	return nil
}
