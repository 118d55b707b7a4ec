package progression

import (
	"fmt"

	"github.com/osse101/skillforge/internal/domain"
)

// Tree is the static node catalogue of one skill. It is built once and never mutated.
type Tree struct {
	skill      domain.Skill
	version    string
	root       *Node
	nodes      map[string]*Node
	order      []*Node
	dependents map[string][]string
}

// Skill is the skill this tree belongs to.
func (t *Tree) Skill() domain.Skill { return t.skill }

// Version is the catalogue document version.
func (t *Tree) Version() string { return t.version }

// Root returns the implicitly unlocked entry node.
func (t *Tree) Root() *Node { return t.root }

// Node looks up a node by id.
func (t *Tree) Node(id string) (*Node, bool) {
	n, ok := t.nodes[id]
	return n, ok
}

// Nodes returns all nodes in catalogue order.
func (t *Tree) Nodes() []*Node {
	out := make([]*Node, len(t.order))
	copy(out, t.order)
	return out
}

// Dependents returns the ids of nodes that list id as a prerequisite.
func (t *Tree) Dependents(id string) []string {
	return append([]string(nil), t.dependents[id]...)
}

// Catalog indexes trees by skill.
type Catalog struct {
	trees map[domain.Skill]*Tree
}

// NewCatalog builds a catalog, rejecting two trees for the same skill.
func NewCatalog(trees ...*Tree) (*Catalog, error) {
	c := &Catalog{trees: make(map[domain.Skill]*Tree, len(trees))}
	for _, t := range trees {
		if _, dup := c.trees[t.skill]; dup {
			return nil, fmt.Errorf("%w: more than one tree for skill %s", ErrInvalidConfig, t.skill)
		}
		c.trees[t.skill] = t
	}
	return c, nil
}

// Tree returns the tree of a skill.
func (c *Catalog) Tree(skill domain.Skill) (*Tree, error) {
	t, ok := c.trees[skill]
	if !ok {
		return nil, fmt.Errorf("%w: no skill tree for %s", domain.ErrNodeNotFound, skill)
	}
	return t, nil
}

// Skills lists the skills that have a tree, in skill order.
func (c *Catalog) Skills() []domain.Skill {
	out := make([]domain.Skill, 0, len(c.trees))
	for _, s := range domain.AllSkills() {
		if _, ok := c.trees[s]; ok {
			out = append(out, s)
		}
	}
	return out
}
