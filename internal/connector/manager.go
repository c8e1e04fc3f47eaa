package connector

import (
	"fmt"
	"strings"

	"github.com/rafa3127/MCP-shared-Config/internal/environment"
)

// Manager holds one instance of every registered connector for a run.
type Manager struct {
	connectors []Connector
}

// Stats summarises how many connectors are enabled.
type Stats struct {
	Total         int      `json:"total"`
	Enabled       int      `json:"enabled"`
	Disabled      int      `json:"disabled"`
	EnabledNames  []string `json:"enabledNames"`
	DisabledNames []string `json:"disabledNames"`
}

// NewManager instantiates every registered connector against env.
func NewManager(env environment.Snapshot, opts Options) *Manager {
	return NewManagerWith(Registered(), env, opts)
}

// NewManagerWith instantiates the given constructors, in order, against env.
func NewManagerWith(ctors []Constructor, env environment.Snapshot, opts Options) *Manager {
	connectors := make([]Connector, 0, len(ctors))
	for _, ctor := range ctors {
		connectors = append(connectors, ctor(env, opts))
	}
	return &Manager{connectors: connectors}
}

// Connectors returns every connector in registry order.
func (m *Manager) Connectors() []Connector {
	out := make([]Connector, len(m.connectors))
	copy(out, m.connectors)
	return out
}

// Enabled returns the enabled connectors in registry order.
func (m *Manager) Enabled() []Connector {
	var out []Connector
	for _, c := range m.connectors {
		if c.IsEnabled() {
			out = append(out, c)
		}
	}
	return out
}

// Lookup finds a connector by name, ignoring case.
func (m *Manager) Lookup(name string) (Connector, bool) {
	for _, c := range m.connectors {
		if strings.EqualFold(c.Name(), name) {
			return c, true
		}
	}
	return nil, false
}

// ValidateAll validates every enabled connector. Disabled connectors are
// not reported. A failing connector never stops the others from being
// checked; the only error returned is a programming error.
func (m *Manager) ValidateAll() (*AggregateResult, error) {
	agg := &AggregateResult{
		Valid:    true,
		Errors:   []string{},
		Warnings: []string{},
		Results:  map[string]*ValidationResult{},
	}

	for _, c := range m.Enabled() {
		result, err := c.Validate()
		if err != nil {
			return nil, fmt.Errorf("validating %s: %w", c.Name(), err)
		}
		agg.Results[c.Name()] = result

		if !result.Valid {
			agg.Valid = false
		}
		for _, e := range result.Errors {
			agg.Errors = append(agg.Errors, prefixed(c, e))
		}
		for _, w := range result.Warnings {
			agg.Warnings = append(agg.Warnings, prefixed(c, w))
		}
	}

	return agg, nil
}

// GenerateAll builds the fragment of every enabled connector, keyed by name.
// It does not validate first.
func (m *Manager) GenerateAll() (map[string]*Fragment, error) {
	configs := map[string]*Fragment{}
	for _, c := range m.Enabled() {
		frag, err := c.GenerateConfig()
		if err != nil {
			return nil, fmt.Errorf("generating %s: %w", c.Name(), err)
		}
		if frag == nil {
			continue
		}
		configs[c.Name()] = frag
	}
	return configs, nil
}

// Infos returns every connector's descriptor projection in registry order.
func (m *Manager) Infos() []Info {
	infos := make([]Info, 0, len(m.connectors))
	for _, c := range m.connectors {
		infos = append(infos, c.Info())
	}
	return infos
}

// Stats counts enabled and disabled connectors.
func (m *Manager) Stats() Stats {
	s := Stats{
		Total:         len(m.connectors),
		EnabledNames:  []string{},
		DisabledNames: []string{},
	}
	for _, c := range m.connectors {
		if c.IsEnabled() {
			s.Enabled++
			s.EnabledNames = append(s.EnabledNames, c.DisplayName())
		} else {
			s.Disabled++
			s.DisabledNames = append(s.DisabledNames, c.DisplayName())
		}
	}
	return s
}

func prefixed(c Connector, msg string) string {
	return fmt.Sprintf("[%s] %s", c.DisplayName(), msg)
}
