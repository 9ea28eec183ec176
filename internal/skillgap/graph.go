package skillgap

import (
	"sort"

	"github.com/alexanderramin/skillpath/internal/domain"
)

// Graph is the skill prerequisite graph with precomputed adjacency.
// It tolerates isolated skills, duplicate edges and cycles.
type Graph struct {
	dependents map[string][]string
	nodes      []string
}

// NewGraph builds a graph from prerequisite -> dependent edges.
// Adjacency lists keep edge order; duplicate edges are collapsed.
func NewGraph(edges []domain.SkillDependency) *Graph {
	g := &Graph{dependents: make(map[string][]string)}
	seenEdge := make(map[domain.SkillDependency]bool, len(edges))
	seenNode := make(map[string]bool)
	addNode := func(id string) {
		if !seenNode[id] {
			seenNode[id] = true
			g.nodes = append(g.nodes, id)
		}
	}
	for _, e := range edges {
		if seenEdge[e] {
			continue
		}
		seenEdge[e] = true
		addNode(e.PrerequisiteSkillID)
		addNode(e.DependentSkillID)
		g.dependents[e.PrerequisiteSkillID] = append(g.dependents[e.PrerequisiteSkillID], e.DependentSkillID)
	}
	return g
}

// Dependents returns the skills that directly depend on id.
func (g *Graph) Dependents(id string) []string {
	return append([]string(nil), g.dependents[id]...)
}

// Bonus returns 2 when mastering skill unblocks another skill the role
// requires, otherwise 1.
func (g *Graph) Bonus(skill string, roleSkills map[string]bool) int {
	for _, dep := range g.dependents[skill] {
		if roleSkills[dep] {
			return 2
		}
	}
	return 1
}

// UnlockCandidates returns every direct dependent of any mastered skill,
// regardless of role. Each candidate appears once, in discovery order.
// Only direct dependents are visited, so cycles cannot loop; a mastered
// skill is still returned when another mastered skill gates it.
func (g *Graph) UnlockCandidates(mastered []string) []string {
	visited := make(map[string]bool)
	var out []string
	for _, id := range mastered {
		for _, dep := range g.dependents[id] {
			if visited[dep] {
				continue
			}
			visited[dep] = true
			out = append(out, dep)
		}
	}
	return out
}

// CycleMembers returns the skills that lie on a dependency cycle: members
// of a strongly connected component with more than one skill, or skills
// that depend on themselves. Skills merely downstream of a cycle are not
// included. The result is sorted; an acyclic graph returns nil.
func (g *Graph) CycleMembers() []string {
	t := &tarjan{
		g:       g,
		index:   make(map[string]int, len(g.nodes)),
		lowlink: make(map[string]int, len(g.nodes)),
		onStack: make(map[string]bool, len(g.nodes)),
	}
	for _, id := range g.nodes {
		if _, seen := t.index[id]; !seen {
			t.connect(id)
		}
	}
	if len(t.members) == 0 {
		return nil
	}
	sort.Strings(t.members)
	return t.members
}

type tarjan struct {
	g       *Graph
	next    int
	index   map[string]int
	lowlink map[string]int
	onStack map[string]bool
	stack   []string
	members []string
}

func (t *tarjan) connect(id string) {
	t.index[id] = t.next
	t.lowlink[id] = t.next
	t.next++
	t.stack = append(t.stack, id)
	t.onStack[id] = true

	selfLoop := false
	for _, dep := range t.g.dependents[id] {
		if dep == id {
			selfLoop = true
		}
		if _, seen := t.index[dep]; !seen {
			t.connect(dep)
			t.lowlink[id] = min(t.lowlink[id], t.lowlink[dep])
		} else if t.onStack[dep] {
			t.lowlink[id] = min(t.lowlink[id], t.index[dep])
		}
	}

	if t.lowlink[id] != t.index[id] {
		return
	}
	var component []string
	for {
		top := t.stack[len(t.stack)-1]
		t.stack = t.stack[:len(t.stack)-1]
		t.onStack[top] = false
		component = append(component, top)
		if top == id {
			break
		}
	}
	if len(component) > 1 || selfLoop {
		t.members = append(t.members, component...)
	}
}
