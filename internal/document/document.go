package document

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/rafa3127/MCP-shared-Config/internal/connector"
	"github.com/rafa3127/MCP-shared-Config/internal/environment"
)

// Document is the single artifact of a run.
type Document struct {
	Connectors map[string]*connector.Fragment `json:"connectors"`
}

// Assemble wraps generated fragments under the connectors key.
func Assemble(configs map[string]*connector.Fragment) *Document {
	connectors := make(map[string]*connector.Fragment, len(configs))
	for name, frag := range configs {
		if frag != nil {
			connectors[name] = frag
		}
	}
	return &Document{Connectors: connectors}
}

// Encode renders the document as indented JSON with a trailing newline.
// Map keys are sorted, so equal documents encode to identical bytes.
func (d *Document) Encode() ([]byte, error) {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding document: %w", err)
	}
	return append(data, '\n'), nil
}

// Names returns the connector names in the document, sorted.
func (d *Document) Names() []string {
	names := make([]string, 0, len(d.Connectors))
	for name := range d.Connectors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Redacted returns a copy whose sensitive env values are masked for display.
func (d *Document) Redacted() *Document {
	out := &Document{Connectors: make(map[string]*connector.Fragment, len(d.Connectors))}
	for name, frag := range d.Connectors {
		cp := *frag
		cp.Args = append([]string(nil), frag.Args...)
		if frag.Env != nil {
			cp.Env = make(map[string]string, len(frag.Env))
			for k, v := range frag.Env {
				cp.Env[k] = environment.RedactValue(k, v)
			}
		}
		out.Connectors[name] = &cp
	}
	return out
}

// Decode parses an encoded document.
func Decode(data []byte) (*Document, error) {
	var d Document
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("decoding document: %w", err)
	}
	if d.Connectors == nil {
		d.Connectors = map[string]*connector.Fragment{}
	}
	return &d, nil
}
