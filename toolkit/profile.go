// Package toolkit defines the per-engine profiles consumed by the render
// core: script extension, static checks, capture fragment, command line, and
// availability probe for each supported plotting toolkit.
//
// Profiles are static data values dispatched through a Registry keyed by the
// toolkit enum, not a class hierarchy. The render core stays
// toolkit-agnostic; everything engine-specific lives here.
package toolkit

import (
	"context"
	"fmt"
	"io"
	"os/exec"

	"github.com/pithecene-io/easel/check"
	"github.com/pithecene-io/easel/types"
)

// Profile describes one plotting engine.
type Profile struct {
	// Toolkit is the engine this profile serves.
	Toolkit types.Toolkit
	// ScriptExtension is the file suffix the interpreter requires,
	// including the leading dot.
	ScriptExtension string
	// Executable is the interpreter or binary invoked for this engine.
	// Overridable via configuration.
	Executable string
	// PrependCapture places the capture fragment before the user script.
	// Set for engines whose output directive must precede plot commands;
	// all other engines get the fragment appended.
	PrependCapture bool
	// Checks are the static validations run before any process spawn.
	Checks []check.Check
	// CaptureFragment builds the script snippet that directs the engine
	// to save its plot to out.FigurePath. May be empty when the command
	// line itself names the output file.
	CaptureFragment func(out types.OutputSpec) string
	// CommandLine builds the shell command that executes the
	// instrumented script.
	CommandLine func(out types.OutputSpec, executable string) string
	// ProbeArgs are the arguments of the availability probe, run against
	// Executable. The engine counts as installed when the probe exits 0.
	ProbeArgs []string
}

// InstrumentedScript concatenates the user script with the capture fragment
// in this profile's declared order.
func (p *Profile) InstrumentedScript(out types.OutputSpec) string {
	fragment := p.CaptureFragment(out)
	if p.PrependCapture {
		return fragment + out.Spec.Script
	}
	return out.Spec.Script + fragment
}

// Command builds the shell command line for out using this profile's
// configured executable.
func (p *Profile) Command(out types.OutputSpec) string {
	return p.CommandLine(out, p.Executable)
}

// Available probes whether the engine is usable in the current environment.
// The probe is live and side-effecting: it runs the interpreter once and
// never caches, so an engine installed mid-run is seen on the next probe.
func (p *Profile) Available(ctx context.Context) bool {
	cmd := exec.CommandContext(ctx, p.Executable, p.ProbeArgs...)
	cmd.Stdout = io.Discard
	cmd.Stderr = io.Discard
	return cmd.Run() == nil
}

// Registry maps each supported toolkit to its profile.
type Registry struct {
	profiles map[types.Toolkit]*Profile
}

// NewRegistry builds a registry over the given profiles.
func NewRegistry(profiles ...*Profile) *Registry {
	m := make(map[types.Toolkit]*Profile, len(profiles))
	for _, p := range profiles {
		m[p.Toolkit] = p
	}
	return &Registry{profiles: m}
}

// Lookup returns the profile for tk.
func (r *Registry) Lookup(tk types.Toolkit) (*Profile, error) {
	p, ok := r.profiles[tk]
	if !ok {
		return nil, fmt.Errorf("unknown toolkit: %q", tk)
	}
	return p, nil
}

// Profiles returns the registered profiles in the canonical toolkit order.
// Unregistered toolkits are skipped.
func (r *Registry) Profiles() []*Profile {
	out := make([]*Profile, 0, len(r.profiles))
	for _, tk := range types.Toolkits() {
		if p, ok := r.profiles[tk]; ok {
			out = append(out, p)
		}
	}
	return out
}
