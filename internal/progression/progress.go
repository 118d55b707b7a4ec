package progression

import "github.com/osse101/skillforge/internal/domain"

// Progress stores unlocked node levels per skill. A missing entry means locked.
type Progress map[domain.Skill]map[string]int

// NewProgress returns empty progress.
func NewProgress() Progress {
	return make(Progress)
}

// Level returns the stored level of a node, 0 when locked.
func (p Progress) Level(skill domain.Skill, nodeID string) int {
	return p[skill][nodeID]
}

func (p Progress) set(skill domain.Skill, nodeID string, level int) {
	if level <= 0 {
		delete(p[skill], nodeID)
		return
	}
	nodes := p[skill]
	if nodes == nil {
		nodes = make(map[string]int)
		p[skill] = nodes
	}
	nodes[nodeID] = level
}

// Clone returns a deep copy.
func (p Progress) Clone() Progress {
	out := make(Progress, len(p))
	for skill, nodes := range p {
		cp := make(map[string]int, len(nodes))
		for id, lvl := range nodes {
			cp[id] = lvl
		}
		out[skill] = cp
	}
	return out
}

// Normalize removes non-positive entries left by hand-edited documents.
func (p Progress) Normalize() {
	for skill, nodes := range p {
		for id, lvl := range nodes {
			if lvl <= 0 {
				delete(nodes, id)
			}
		}
		if len(nodes) == 0 {
			delete(p, skill)
		}
	}
}
