package progression

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/osse101/skillforge/configs"
	"github.com/osse101/skillforge/internal/domain"
	"github.com/osse101/skillforge/internal/validation"
)

// Sentinel errors for tree loader
var (
	ErrDuplicateNodeKey = errors.New("duplicate node key")
	ErrMissingParent    = errors.New("parent node not found")
	ErrCycleDetected    = errors.New("cycle detected in tree")
	ErrInvalidConfig    = errors.New("invalid configuration")
)

// TreeConfig represents the JSON configuration of one skill's tree
type TreeConfig struct {
	Version     string       `json:"version"`
	Skill       domain.Skill `json:"skill"`
	Description string       `json:"description"`
	Nodes       []NodeConfig `json:"nodes"`
}

// NodeConfig represents a single node in the tree JSON
type NodeConfig struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Description  string           `json:"description"`
	MaxLevel     int              `json:"max_level"`
	RequiredTier domain.TokenTier `json:"required_tier"`

	// Costs[i] is the token cost of level i+1; one entry per level is required
	Costs []int `json:"costs"`

	Root    bool `json:"root"`
	Special bool `json:"special"` // kept through tree resets, never refunded

	// Prerequisites use OR logic: any one satisfied edge makes the node reachable
	Prerequisites []PrerequisiteConfig `json:"prerequisites"`
}

// PrerequisiteConfig is one incoming edge
type PrerequisiteConfig struct {
	Node     string `json:"node"`
	MinLevel int    `json:"min_level"`
}

// TreeLoader parses and validates tree configuration
type TreeLoader struct {
	schemas validation.SchemaValidator
}

// NewTreeLoader creates a loader that checks documents against the embedded tree schema
func NewTreeLoader() *TreeLoader {
	return &TreeLoader{schemas: validation.NewSchemaValidator(configs.FS)}
}

// Parse validates a tree document against the schema and builds the tree
func (l *TreeLoader) Parse(data []byte) (*Tree, error) {
	if err := l.schemas.ValidateBytes(data, configs.TreeSchema); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	var config TreeConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse tree config: %w", err)
	}

	return Build(&config)
}

// LoadCatalog reads every *.json tree in dir of fsys. Each skill may appear at most once.
func (l *TreeLoader) LoadCatalog(fsys fs.FS, dir string) (*Catalog, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read tree directory %s: %w", dir, err)
	}

	trees := make([]*Tree, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		file := path.Join(dir, entry.Name())
		data, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, fmt.Errorf("failed to read tree config file %s: %w", file, err)
		}
		tree, err := l.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", file, err)
		}
		trees = append(trees, tree)
	}

	return NewCatalog(trees...)
}

// DefaultCatalog loads the embedded trees shipped with the binary
func DefaultCatalog() (*Catalog, error) {
	return NewTreeLoader().LoadCatalog(configs.FS, configs.TreesDir)
}

// Validate checks the tree configuration for errors
func Validate(config *TreeConfig) error {
	if config == nil {
		return fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}
	if !config.Skill.Valid() {
		return fmt.Errorf("%w: unknown skill", ErrInvalidConfig)
	}
	if len(config.Nodes) == 0 {
		return fmt.Errorf("%w: no nodes defined", ErrInvalidConfig)
	}

	nodesByKey := make(map[string]*NodeConfig, len(config.Nodes))
	roots := 0

	for i := range config.Nodes {
		node := &config.Nodes[i]

		if node.ID == "" {
			return fmt.Errorf("%w: node at index %d has empty id", ErrInvalidConfig, i)
		}
		if _, exists := nodesByKey[node.ID]; exists {
			return fmt.Errorf("%w: '%s'", ErrDuplicateNodeKey, node.ID)
		}
		nodesByKey[node.ID] = node

		if node.Name == "" {
			return fmt.Errorf("%w: node '%s' has empty name", ErrInvalidConfig, node.ID)
		}
		if node.MaxLevel <= 0 {
			return fmt.Errorf("%w: node '%s' has invalid max_level %d", ErrInvalidConfig, node.ID, node.MaxLevel)
		}
		if !node.RequiredTier.Valid() {
			return fmt.Errorf("%w: node '%s' has invalid required tier", ErrInvalidConfig, node.ID)
		}

		// every level in 1..max_level must have an explicit cost
		if len(node.Costs) != node.MaxLevel {
			return fmt.Errorf("%w: node '%s' defines %d costs for max_level %d", ErrInvalidConfig, node.ID, len(node.Costs), node.MaxLevel)
		}
		for lvl, cost := range node.Costs {
			if cost < 0 {
				return fmt.Errorf("%w: node '%s' has negative cost at level %d", ErrInvalidConfig, node.ID, lvl+1)
			}
		}

		if node.Root {
			roots++
			if len(node.Prerequisites) > 0 {
				return fmt.Errorf("%w: root node '%s' cannot have prerequisites", ErrInvalidConfig, node.ID)
			}
			if node.MaxLevel != 1 || node.Costs[0] != 0 {
				return fmt.Errorf("%w: root node '%s' must be a single free level", ErrInvalidConfig, node.ID)
			}
		} else if len(node.Prerequisites) == 0 {
			return fmt.Errorf("%w: node '%s' has no prerequisites", ErrInvalidConfig, node.ID)
		}
	}

	if roots != 1 {
		return fmt.Errorf("%w: expected exactly one root node, found %d", ErrInvalidConfig, roots)
	}

	// Validate prerequisite references exist and levels are reachable
	for _, node := range config.Nodes {
		for _, prereq := range node.Prerequisites {
			parent, exists := nodesByKey[prereq.Node]
			if !exists {
				return fmt.Errorf("%w: node '%s' references prerequisite '%s'", ErrMissingParent, node.ID, prereq.Node)
			}
			if prereq.MinLevel < 1 || prereq.MinLevel > parent.MaxLevel {
				return fmt.Errorf("%w: node '%s' requires '%s' at level %d (max %d)", ErrInvalidConfig, node.ID, prereq.Node, prereq.MinLevel, parent.MaxLevel)
			}
		}
	}

	return detectCycles(config.Nodes, nodesByKey)
}

// detectCycles uses DFS to find cycles in the tree
func detectCycles(nodes []NodeConfig, nodesByKey map[string]*NodeConfig) error {
	// State: 0 = unvisited, 1 = visiting, 2 = visited
	state := make(map[string]int, len(nodes))

	var dfs func(key string) error
	dfs = func(key string) error {
		if state[key] == 1 {
			return fmt.Errorf("%w: at node '%s'", ErrCycleDetected, key)
		}
		if state[key] == 2 {
			return nil
		}

		state[key] = 1
		for _, prereq := range nodesByKey[key].Prerequisites {
			if err := dfs(prereq.Node); err != nil {
				return err
			}
		}
		state[key] = 2
		return nil
	}

	for _, node := range nodes {
		if state[node.ID] == 0 {
			if err := dfs(node.ID); err != nil {
				return err
			}
		}
	}

	return nil
}

// Build validates config and turns it into an immutable Tree
func Build(config *TreeConfig) (*Tree, error) {
	if err := Validate(config); err != nil {
		return nil, err
	}

	t := &Tree{
		skill:      config.Skill,
		version:    config.Version,
		nodes:      make(map[string]*Node, len(config.Nodes)),
		order:      make([]*Node, 0, len(config.Nodes)),
		dependents: make(map[string][]string),
	}
	for _, nc := range config.Nodes {
		node := &Node{
			ID:           nc.ID,
			Name:         nc.Name,
			Description:  nc.Description,
			MaxLevel:     nc.MaxLevel,
			RequiredTier: nc.RequiredTier,
			Root:         nc.Root,
			Special:      nc.Special,
			costs:        append([]int(nil), nc.Costs...),
		}
		for _, p := range nc.Prerequisites {
			node.Prerequisites = append(node.Prerequisites, Edge{From: p.Node, MinLevel: p.MinLevel})
			t.dependents[p.Node] = append(t.dependents[p.Node], nc.ID)
		}
		if node.Root {
			t.root = node
		}
		t.nodes[node.ID] = node
		t.order = append(t.order, node)
	}
	return t, nil
}
