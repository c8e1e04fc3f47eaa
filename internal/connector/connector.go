package connector

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/rafa3127/MCP-shared-Config/internal/environment"
	"github.com/spf13/afero"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultPriority is the priority of a connector that does not declare one.
const DefaultPriority = 1

// enabledValue is the only value of an enabled var that turns a connector on.
const enabledValue = "true"

// ErrNotImplemented marks a variant that lacks a required behaviour. It
// signals a misconfigured registry, never bad user input.
var ErrNotImplemented = errors.New("connector behaviour not implemented")

// Connector is the capability every registered connector exposes.
type Connector interface {
	Name() string
	DisplayName() string
	IsEnabled() bool
	RequiredEnvVars() ([]string, error)
	OptionalEnvVars() []string
	Validate() (*ValidationResult, error)
	GenerateConfig() (*Fragment, error)
	Info() Info
	Docs() string
}

// Fragment is the launch specification of one connector in the final document.
type Fragment struct {
	Command string            `json:"command"`
	Args    []string          `json:"args"`
	Env     map[string]string `json:"env,omitempty"`
}

// Info is a read-only projection of a connector's descriptor and state.
type Info struct {
	Name         string `json:"name"`
	DisplayName  string `json:"displayName"`
	Enabled      bool   `json:"enabled"`
	EnabledVar   string `json:"enabledVar"`
	Priority     int    `json:"priority"`
	Instructions string `json:"instructions,omitempty"`
}

// Descriptor is the static data of a connector variant. Zero fields are
// filled from the variant's type name at construction.
type Descriptor struct {
	Name         string
	DisplayName  string
	EnabledVar   string
	Priority     int
	Instructions string

	// Package is the npm package launched through npx.
	Package string

	// DefaultTag is appended as "@tag" to Package when no version pin is set.
	DefaultTag string
}

// Options carries the collaborators a connector needs besides the snapshot.
type Options struct {
	// Fs answers existence checks during validation. Defaults to the OS filesystem.
	Fs afero.Fs

	// HomeDir replaces a leading "~" in paths. Defaults to HOME (or
	// USERPROFILE) from the snapshot.
	HomeDir string
}

func (o Options) withDefaults(env environment.Snapshot) Options {
	if o.Fs == nil {
		o.Fs = afero.NewOsFs()
	}
	if o.HomeDir == "" {
		o.HomeDir = env.Get("HOME")
	}
	if o.HomeDir == "" {
		o.HomeDir = env.Get("USERPROFILE")
	}
	return o
}

// Variant behaviours. A variant type implements the ones it supports; Base
// dispatches to them and reports ErrNotImplemented for the rest.
type (
	checker interface {
		check(r *ValidationResult)
	}
	builder interface {
		build() *Fragment
	}
	requirer interface {
		requiredEnvVars() []string
	}
	optionaler interface {
		optionalEnvVars() []string
	}
	documenter interface {
		docs() string
	}
)

// Base carries the descriptor, the snapshot and the collaborators shared by
// every variant, and implements the Connector contract on top of the
// variant's behaviours.
type Base struct {
	desc Descriptor
	env  environment.Snapshot
	fs   afero.Fs
	home string
	impl any
}

// newBase fills the descriptor defaults from impl's type name and binds
// impl as the variant Base dispatches to.
func newBase(impl any, desc Descriptor, env environment.Snapshot, opts Options) *Base {
	opts = opts.withDefaults(env)

	if desc.Name == "" {
		desc.Name = nameOf(impl)
	}
	if desc.DisplayName == "" {
		desc.DisplayName = cases.Title(language.English).String(desc.Name)
	}
	if desc.EnabledVar == "" {
		desc.EnabledVar = strings.ToUpper(desc.Name) + "_ENABLED"
	}
	if desc.Priority == 0 {
		desc.Priority = DefaultPriority
	}

	return &Base{
		desc: desc,
		env:  env,
		fs:   opts.Fs,
		home: opts.HomeDir,
		impl: impl,
	}
}

// nameOf lower-cases the variant's type name: *GoogleDrive → "googledrive".
func nameOf(impl any) string {
	t := reflect.TypeOf(impl)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return strings.ToLower(t.Name())
}

// Name returns the lower-case connector name used as the document key.
func (b *Base) Name() string { return b.desc.Name }

// DisplayName returns the human-readable connector name.
func (b *Base) DisplayName() string { return b.desc.DisplayName }

// EnabledVar returns the variable whose exact value "true" enables the connector.
func (b *Base) EnabledVar() string { return b.desc.EnabledVar }

// Priority returns the informational precedence hint.
func (b *Base) Priority() int { return b.desc.Priority }

// Instructions returns usage guidance for a downstream agent, or "".
func (b *Base) Instructions() string { return b.desc.Instructions }

// IsEnabled reports whether the enabled var is exactly "true".
func (b *Base) IsEnabled() bool {
	return b.env.Get(b.EnabledVar()) == enabledValue
}

// RequiredEnvVars returns the variables the connector needs when enabled.
func (b *Base) RequiredEnvVars() ([]string, error) {
	r, ok := b.impl.(requirer)
	if !ok {
		return nil, b.notImplemented("RequiredEnvVars")
	}
	return r.requiredEnvVars(), nil
}

// OptionalEnvVars returns the variables the connector reads when present.
// The package version pin is always among them.
func (b *Base) OptionalEnvVars() []string {
	var vars []string
	if o, ok := b.impl.(optionaler); ok {
		vars = append(vars, o.optionalEnvVars()...)
	}
	return append(vars, b.versionVar())
}

// Validate checks the connector's inputs. A disabled connector is always valid.
func (b *Base) Validate() (*ValidationResult, error) {
	result := &ValidationResult{Valid: true, Errors: []string{}, Warnings: []string{}}
	if !b.IsEnabled() {
		return result, nil
	}

	c, ok := b.impl.(checker)
	if !ok {
		return nil, b.notImplemented("Validate")
	}
	c.check(result)
	b.checkVersionPin(result)

	result.Valid = len(result.Errors) == 0
	return result, nil
}

// GenerateConfig returns the connector's fragment, or nil when disabled.
// It does not validate; unmet requirements yield a best-effort fragment.
func (b *Base) GenerateConfig() (*Fragment, error) {
	if !b.IsEnabled() {
		return nil, nil
	}
	bl, ok := b.impl.(builder)
	if !ok {
		return nil, b.notImplemented("GenerateConfig")
	}
	return bl.build(), nil
}

// Info returns the descriptor projection.
func (b *Base) Info() Info {
	return Info{
		Name:         b.desc.Name,
		DisplayName:  b.desc.DisplayName,
		Enabled:      b.IsEnabled(),
		EnabledVar:   b.EnabledVar(),
		Priority:     b.Priority(),
		Instructions: b.Instructions(),
	}
}

// Docs returns markdown documentation for the connector.
func (b *Base) Docs() string {
	if d, ok := b.impl.(documenter); ok {
		return d.docs()
	}
	return fmt.Sprintf("# %s\n\nNo documentation yet.\n", b.desc.DisplayName)
}

func (b *Base) notImplemented(op string) error {
	return fmt.Errorf("%w: %s.%s", ErrNotImplemented, b.desc.Name, op)
}
