package progression

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/skillforge/internal/domain"
)

func validConfig() *TreeConfig {
	return &TreeConfig{
		Version: "1.0",
		Skill:   domain.SkillMining,
		Nodes: []NodeConfig{
			{ID: "root", Name: "Root", MaxLevel: 1, Costs: []int{0}, Root: true},
			{ID: "a", Name: "A", MaxLevel: 3, Costs: []int{1, 2, 3}, Prerequisites: []PrerequisiteConfig{{Node: "root", MinLevel: 1}}},
			{ID: "b", Name: "B", MaxLevel: 3, Costs: []int{1, 2, 3}, Prerequisites: []PrerequisiteConfig{{Node: "root", MinLevel: 1}}},
			{ID: "c", Name: "C", MaxLevel: 2, RequiredTier: domain.TierAdvanced, Costs: []int{2, 3},
				Prerequisites: []PrerequisiteConfig{{Node: "a", MinLevel: 2}, {Node: "b", MinLevel: 3}}},
			{ID: "cap", Name: "Cap", MaxLevel: 3, RequiredTier: domain.TierBasic, Costs: []int{1, 2, 3}, Special: true,
				Prerequisites: []PrerequisiteConfig{{Node: "root", MinLevel: 1}}},
		},
	}
}

func TestValidate_AcceptsValidConfig(t *testing.T) {
	assert.NoError(t, Validate(validConfig()))
}

func TestValidate_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *TreeConfig)
		wantErr error
	}{
		{"nil nodes", func(c *TreeConfig) { c.Nodes = nil }, ErrInvalidConfig},
		{"duplicate id", func(c *TreeConfig) { c.Nodes[2].ID = "a" }, ErrDuplicateNodeKey},
		{"empty name", func(c *TreeConfig) { c.Nodes[1].Name = "" }, ErrInvalidConfig},
		{"missing cost level", func(c *TreeConfig) { c.Nodes[1].Costs = []int{1, 2} }, ErrInvalidConfig},
		{"extra cost level", func(c *TreeConfig) { c.Nodes[1].Costs = []int{1, 2, 3, 4} }, ErrInvalidConfig},
		{"negative cost", func(c *TreeConfig) { c.Nodes[1].Costs = []int{1, -2, 3} }, ErrInvalidConfig},
		{"no root", func(c *TreeConfig) {
			c.Nodes[0].Root = false
			c.Nodes[0].Prerequisites = []PrerequisiteConfig{{Node: "a", MinLevel: 1}}
		}, ErrInvalidConfig},
		{"two roots", func(c *TreeConfig) { c.Nodes[1].Root = true; c.Nodes[1].Prerequisites = nil }, ErrInvalidConfig},
		{"root with cost", func(c *TreeConfig) { c.Nodes[0].Costs = []int{5} }, ErrInvalidConfig},
		{"orphan node", func(c *TreeConfig) { c.Nodes[1].Prerequisites = nil }, ErrInvalidConfig},
		{"unknown prerequisite", func(c *TreeConfig) { c.Nodes[3].Prerequisites[0].Node = "ghost" }, ErrMissingParent},
		{"unreachable min level", func(c *TreeConfig) { c.Nodes[3].Prerequisites[0].MinLevel = 4 }, ErrInvalidConfig},
		{"invalid skill", func(c *TreeConfig) { c.Skill = domain.Skill(42) }, ErrInvalidConfig},
		{"cycle", func(c *TreeConfig) {
			c.Nodes[1].Prerequisites = append(c.Nodes[1].Prerequisites, PrerequisiteConfig{Node: "c", MinLevel: 1})
		}, ErrCycleDetected},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			assert.ErrorIs(t, Validate(cfg), tt.wantErr)
		})
	}
}

func TestBuild(t *testing.T) {
	tree, err := Build(validConfig())
	require.NoError(t, err)

	assert.Equal(t, domain.SkillMining, tree.Skill())
	assert.Equal(t, "root", tree.Root().ID)
	assert.Len(t, tree.Nodes(), 5)
	assert.ElementsMatch(t, []string{"a", "b", "cap"}, tree.Dependents("root"))

	c, ok := tree.Node("c")
	require.True(t, ok)
	cost, ok := c.CostAtLevel(2)
	assert.True(t, ok)
	assert.Equal(t, 3, cost)
	_, ok = c.CostAtLevel(3)
	assert.False(t, ok)
	_, ok = c.CostAtLevel(0)
	assert.False(t, ok)
}

func TestTreeLoader_Parse(t *testing.T) {
	loader := NewTreeLoader()

	_, err := loader.Parse([]byte(`{"version":"1","skill":"mining","nodes":[{"id":"Bad Id","name":"x","max_level":1,"required_tier":"basic","costs":[0],"root":true}]}`))
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = loader.Parse([]byte(`{"version":"1","skill":"alchemy","nodes":[]}`))
	assert.ErrorIs(t, err, ErrInvalidConfig)

	tree, err := loader.Parse([]byte(`{"version":"2","skill":"fishing","nodes":[
		{"id":"start","name":"Start","max_level":1,"required_tier":"basic","costs":[0],"root":true},
		{"id":"cast","name":"Cast","max_level":2,"required_tier":"master","costs":[4,5],
		 "prerequisites":[{"node":"start","min_level":1}]}]}`))
	require.NoError(t, err)
	assert.Equal(t, domain.SkillFishing, tree.Skill())
	assert.Equal(t, "2", tree.Version())
	cast, ok := tree.Node("cast")
	require.True(t, ok)
	assert.Equal(t, domain.TierMaster, cast.RequiredTier)
	assert.Equal(t, []int{4, 5}, cast.Costs())
}

func TestTreeLoader_LoadCatalogRejectsDuplicateSkill(t *testing.T) {
	doc := []byte(`{"version":"1","skill":"mining","nodes":[{"id":"r","name":"R","max_level":1,"required_tier":"basic","costs":[0],"root":true}]}`)
	fsys := fstest.MapFS{
		"trees/a.json":     &fstest.MapFile{Data: doc},
		"trees/b.json":     &fstest.MapFile{Data: doc},
		"trees/readme.txt": &fstest.MapFile{Data: []byte("ignored")},
	}
	_, err := NewTreeLoader().LoadCatalog(fsys, "trees")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestDefaultCatalog_CoversEverySkill(t *testing.T) {
	catalog, err := DefaultCatalog()
	require.NoError(t, err)

	assert.Equal(t, domain.AllSkills(), catalog.Skills())
	for _, skill := range domain.AllSkills() {
		tree, err := catalog.Tree(skill)
		require.NoError(t, err)
		assert.True(t, tree.Root().Root)

		special := 0
		for _, n := range tree.Nodes() {
			if n.Special {
				special++
			}
		}
		assert.Equal(t, 1, special, "skill %s", skill)
	}
}
