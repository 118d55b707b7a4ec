package reward

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/osse101/skillforge/configs"
	"github.com/osse101/skillforge/internal/domain"
	"github.com/osse101/skillforge/internal/validation"
)

// Catalog indexes reward trees by skill.
type Catalog struct {
	trees map[domain.Skill]*Tree
}

// NewCatalog builds a catalog, rejecting two trees for the same skill.
func NewCatalog(trees ...*Tree) (*Catalog, error) {
	c := &Catalog{trees: make(map[domain.Skill]*Tree, len(trees))}
	for _, t := range trees {
		if _, dup := c.trees[t.skill]; dup {
			return nil, fmt.Errorf("%w: more than one reward tree for skill %s", ErrInvalidConfig, t.skill)
		}
		c.trees[t.skill] = t
	}
	return c, nil
}

// Tree returns the reward tree of a skill.
func (c *Catalog) Tree(skill domain.Skill) (*Tree, error) {
	t, ok := c.trees[skill]
	if !ok {
		return nil, fmt.Errorf("%w: no reward tree for %s", domain.ErrTierNotFound, skill)
	}
	return t, nil
}

// Skills lists the skills that have a reward tree, in skill order.
func (c *Catalog) Skills() []domain.Skill {
	out := make([]domain.Skill, 0, len(c.trees))
	for _, s := range domain.AllSkills() {
		if _, ok := c.trees[s]; ok {
			out = append(out, s)
		}
	}
	return out
}

// Parse validates a reward document against the embedded schema and builds it.
func Parse(schemas validation.SchemaValidator, data []byte) (*Tree, error) {
	if err := schemas.ValidateBytes(data, configs.RewardSchema); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	var config TreeConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse reward config: %w", err)
	}
	return Build(&config)
}

// LoadCatalog reads every *.json reward tree in dir of fsys.
func LoadCatalog(fsys fs.FS, dir string) (*Catalog, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read reward directory %s: %w", dir, err)
	}

	schemas := validation.NewSchemaValidator(configs.FS)
	trees := make([]*Tree, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		file := path.Join(dir, entry.Name())
		data, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, fmt.Errorf("failed to read reward config file %s: %w", file, err)
		}
		tree, err := Parse(schemas, data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", file, err)
		}
		trees = append(trees, tree)
	}
	return NewCatalog(trees...)
}

// DefaultCatalog loads the embedded reward trees.
func DefaultCatalog() (*Catalog, error) {
	return LoadCatalog(configs.FS, configs.RewardsDir)
}
