// Package runtime implements the easel render pipeline: the
// content-addressed cache gate, pre-execution checks, script
// instrumentation, external process invocation, and outcome
// classification.
package runtime

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pithecene-io/easel/addr"
	"github.com/pithecene-io/easel/check"
	"github.com/pithecene-io/easel/log"
	"github.com/pithecene-io/easel/metrics"
	"github.com/pithecene-io/easel/toolkit"
	"github.com/pithecene-io/easel/types"
)

// Probe reports toolkit availability. Used for test injection; the default
// runs the profile's live availability probe.
type Probe func(ctx context.Context, p *toolkit.Profile) bool

// RenderConfig configures a Renderer.
type RenderConfig struct {
	// Registry resolves toolkit profiles. Required.
	Registry *toolkit.Registry
	// Process invokes external commands. Defaults to a ShellRunner.
	Process ProcessRunner
	// Probe overrides availability probing (for testing).
	// If nil, profiles are probed live.
	Probe Probe
	// Collector is the metrics collector. If nil, no metrics are
	// recorded (all Collector methods are nil-safe).
	Collector *metrics.Collector
	// LogWriter overrides the log destination (for testing).
	// If nil, logs go to stderr.
	LogWriter io.Writer
}

// RenderResult pairs the classified outcome with render metadata for the
// caller's reporting layer.
type RenderResult struct {
	// Outcome is the classified terminal result.
	Outcome types.RenderOutcome
	// FigurePath is the content-addressed artifact location. Set for
	// every request, whatever the outcome.
	FigurePath string
	// Cached reports whether the artifact already existed and no process
	// was spawned.
	Cached bool
	// Duration is the total request duration.
	Duration time.Duration
	// CombinedOutput is the captured process output, empty when no
	// process ran. Diagnostic only.
	CombinedOutput string
}

// Renderer executes figure requests against the content-addressed cache.
// Safe for concurrent use: all state beyond the file system is immutable
// configuration or the mutex-guarded collector.
type Renderer struct {
	config RenderConfig
}

// NewRenderer creates a Renderer. Returns an error when the config lacks a
// toolkit registry.
func NewRenderer(config RenderConfig) (*Renderer, error) {
	if config.Registry == nil {
		return nil, fmt.Errorf("render config requires a toolkit registry")
	}
	if config.Process == nil {
		config.Process = &ShellRunner{}
	}
	if config.Probe == nil {
		config.Probe = func(ctx context.Context, p *toolkit.Profile) bool {
			return p.Available(ctx)
		}
	}
	return &Renderer{config: config}, nil
}

// Render executes one figure request end-to-end.
//
// Flow:
//  1. Cache gate: existing artifact short-circuits to success, no spawn
//  2. Checks: fold the profile's validations, reject before any spawn
//  3. Instrument and materialize the script at its content-hashed temp path
//  4. Invoke the toolkit command, blocking until exit
//  5. Classify exit status, re-probing availability on failure
//  6. Persist the source transcript on success
//
// The returned error is reserved for fatal environment failures (cannot
// write a file, cannot spawn a shell); every classifiable result arrives
// through RenderResult.Outcome.
func (r *Renderer) Render(ctx context.Context, spec types.FigureSpec) (*RenderResult, error) {
	start := time.Now()
	r.config.Collector.IncRenderStarted()

	logger := r.newLogger(spec.Toolkit)

	profile, err := r.config.Registry.Lookup(spec.Toolkit)
	if err != nil {
		return nil, err
	}

	figurePath := addr.FigurePath(spec)
	result := &RenderResult{FigurePath: figurePath}

	needsRun, err := ShouldRun(spec)
	if err != nil {
		return nil, err
	}
	if !needsRun {
		logger.Debug("cache hit", map[string]any{"figure": figurePath})
		if err := WriteTranscript(spec); err != nil {
			return nil, err
		}
		r.config.Collector.IncCacheHit()
		r.config.Collector.IncRenderSucceeded()
		result.Outcome = types.Success()
		result.Cached = true
		result.Duration = time.Since(start)
		return result, nil
	}

	if res := check.Fold(profile.Checks, spec.Script); !res.OK() {
		logger.Warn("checks failed", map[string]any{"message": res.Message()})
		r.config.Collector.IncChecksFailed()
		result.Outcome = types.ChecksFailed(res.Message())
		result.Duration = time.Since(start)
		return result, nil
	}

	out := types.OutputSpec{
		Spec:       spec,
		ScriptPath: addr.ScriptPath(spec, profile.ScriptExtension),
		FigurePath: figurePath,
	}

	instrumented := profile.InstrumentedScript(out)
	if err := os.WriteFile(out.ScriptPath, []byte(instrumented), 0o644); err != nil {
		return nil, fmt.Errorf("cannot write script %q: %w", out.ScriptPath, err)
	}

	command := profile.Command(out)
	logger.Info("spawning toolkit process", map[string]any{
		"command": command,
		"figure":  figurePath,
	})
	r.config.Collector.IncProcessSpawned()

	execResult, err := r.config.Process.Run(ctx, command)
	if err != nil {
		// Spawn failure is an environment fault, not a classifiable
		// script outcome.
		return nil, err
	}
	result.CombinedOutput = string(execResult.CombinedOutput)
	logger.Debug("process exited", map[string]any{
		"exit_code": execResult.ExitCode,
		"output":    result.CombinedOutput,
	})

	available := true
	if execResult.ExitCode != 0 {
		available = r.config.Probe(ctx, profile)
	}
	result.Outcome = Classify(execResult.ExitCode, command, spec.Toolkit, available)

	switch result.Outcome.Status {
	case types.StatusSuccess:
		if err := WriteTranscript(spec); err != nil {
			return nil, err
		}
		r.config.Collector.IncRenderSucceeded()
	case types.StatusToolkitMissing:
		r.config.Collector.IncToolkitMissing()
		logger.Warn("toolkit not installed", map[string]any{"toolkit": string(spec.Toolkit)})
	default:
		r.config.Collector.IncRenderFailed()
		logger.Error("render failed", map[string]any{
			"command":   command,
			"exit_code": execResult.ExitCode,
		})
	}

	result.Duration = time.Since(start)
	return result, nil
}

func (r *Renderer) newLogger(tk types.Toolkit) *log.Logger {
	if r.config.LogWriter != nil {
		return log.NewLoggerWithWriter(tk, r.config.LogWriter)
	}
	return log.NewLogger(tk)
}
