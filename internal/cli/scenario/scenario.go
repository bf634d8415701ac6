// Package scenario loads and runs scripted desktop sessions from YAML.
// A scenario declares workspaces, an initial set of clients, a list of
// ops to apply in order, and an optional expect block checked against
// the final state. The simulate command is the main consumer.
package scenario

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Scenario is one scripted session.
type Scenario struct {
	Name       string       `yaml:"name"`
	Workspaces []string     `yaml:"workspaces,omitempty"`
	Clients    []ClientSpec `yaml:"clients,omitempty"`
	Ops        []Op         `yaml:"ops,omitempty"`
	Expect     *Expect      `yaml:"expect,omitempty"`
}

// ClientSpec seeds one client before the ops run. Clients listed for the
// same workspace keep the file's order, first entry at the top of the
// stack.
type ClientSpec struct {
	ID        uint32 `yaml:"id"`
	Class     string `yaml:"class,omitempty"`
	Title     string `yaml:"title,omitempty"`
	Workspace int    `yaml:"workspace,omitempty"`
	Floating  bool   `yaml:"floating,omitempty"`
}

// Op is one scripted operation. Which fields matter depends on Op; the
// rest are ignored.
type Op struct {
	Op     string `yaml:"op"`
	ID     uint32 `yaml:"id,omitempty"`
	Class  string `yaml:"class,omitempty"`
	Title  string `yaml:"title,omitempty"`
	Dir    string `yaml:"dir,omitempty"`
	Index  int    `yaml:"index,omitempty"`
	Name   string `yaml:"name,omitempty"`
	Target int    `yaml:"target,omitempty"`
	Query  string `yaml:"query,omitempty"`
	Label  string `yaml:"label,omitempty"`
	Urgent *bool  `yaml:"urgent,omitempty"`
}

// Expect describes the desktop state a scenario should end in. Zero
// fields are not checked.
type Expect struct {
	FocusedWorkspace string            `yaml:"focused_workspace,omitempty"`
	FocusedClient    *uint32           `yaml:"focused_client,omitempty"`
	Workspaces       []ExpectWorkspace `yaml:"workspaces,omitempty"`
}

// ExpectWorkspace pins the exact stack of one workspace, top first.
type ExpectWorkspace struct {
	Name    string   `yaml:"name"`
	Clients []uint32 `yaml:"clients"`
}

var knownOps = map[string]struct{}{
	"map-client":        {},
	"remove-client":     {},
	"focus-client":      {},
	"focus-index":       {},
	"focus-class":       {},
	"cycle-focus":       {},
	"drag-client":       {},
	"rotate":            {},
	"focus-workspace":   {},
	"cycle-workspace":   {},
	"move-to-workspace": {},
	"set-urgent":        {},
	"save-snapshot":     {},
}

// Load reads and parses a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}

	sc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	return sc, nil
}

// Parse decodes a scenario document and applies defaults. A scenario
// without workspaces gets the stock nine.
func Parse(data []byte) (*Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}

	if len(sc.Workspaces) == 0 {
		sc.Workspaces = defaultWorkspaces()
	}

	if err := sc.validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

func defaultWorkspaces() []string {
	names := make([]string, 9)
	for i := range names {
		names[i] = strconv.Itoa(i + 1)
	}
	return names
}

func (s *Scenario) validate() error {
	seen := make(map[uint32]struct{}, len(s.Clients))
	for i, cs := range s.Clients {
		if cs.ID == 0 {
			return fmt.Errorf("client %d: id is required", i+1)
		}
		if _, dup := seen[cs.ID]; dup {
			return fmt.Errorf("client %d: duplicate id %d", i+1, cs.ID)
		}
		seen[cs.ID] = struct{}{}

		if cs.Workspace < 0 || cs.Workspace >= len(s.Workspaces) {
			return fmt.Errorf("client %d: workspace %d out of range", i+1, cs.Workspace)
		}
	}

	for i, op := range s.Ops {
		if _, ok := knownOps[op.Op]; !ok {
			return fmt.Errorf("op %d: unknown op %q", i+1, op.Op)
		}
		if op.Op == "save-snapshot" && op.Label == "" {
			return fmt.Errorf("op %d: save-snapshot needs a label", i+1)
		}
	}
	return nil
}
