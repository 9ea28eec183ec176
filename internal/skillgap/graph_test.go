package skillgap

import (
	"testing"

	"github.com/alexanderramin/skillpath/internal/domain"
	"github.com/stretchr/testify/assert"
)

func edge(pre, dep string) domain.SkillDependency {
	return domain.SkillDependency{PrerequisiteSkillID: pre, DependentSkillID: dep}
}

func TestGraph_Bonus(t *testing.T) {
	g := NewGraph([]domain.SkillDependency{
		edge("a", "b"),
		edge("a", "x"),
		edge("c", "y"),
	})
	role := map[string]bool{"a": true, "b": true, "c": true}

	assert.Equal(t, 2, g.Bonus("a", role), "a gates b")
	assert.Equal(t, 1, g.Bonus("c", role), "c only gates y outside the role")
	assert.Equal(t, 1, g.Bonus("b", role), "b has no dependents")
	assert.Equal(t, 1, g.Bonus("isolated", role))
}

func TestGraph_UnlockCandidates(t *testing.T) {
	g := NewGraph([]domain.SkillDependency{
		edge("a", "b"),
		edge("a", "c"),
		edge("d", "c"),
		edge("d", "e"),
		edge("b", "f"),
	})

	assert.Equal(t, []string{"b", "c"}, g.UnlockCandidates([]string{"a"}))
	assert.Equal(t, []string{"b", "c", "e"}, g.UnlockCandidates([]string{"a", "d"}), "c deduplicated")
	assert.Empty(t, g.UnlockCandidates([]string{"f"}))
	assert.Empty(t, g.UnlockCandidates(nil))
}

func TestGraph_UnlockCandidates_Cycle(t *testing.T) {
	g := NewGraph([]domain.SkillDependency{
		edge("a", "b"),
		edge("b", "a"),
		edge("c", "c"),
	})

	assert.Equal(t, []string{"b"}, g.UnlockCandidates([]string{"a"}))
	assert.Equal(t, []string{"b", "a"}, g.UnlockCandidates([]string{"a", "b"}))
	assert.Equal(t, []string{"c"}, g.UnlockCandidates([]string{"c"}))
}

func TestGraph_UnlockCandidates_MasteredDependentIncluded(t *testing.T) {
	g := NewGraph([]domain.SkillDependency{edge("a", "b"), edge("b", "c")})

	assert.Equal(t, []string{"b", "c"}, g.UnlockCandidates([]string{"a", "b"}))
}

func TestGraph_DuplicateEdgesCollapse(t *testing.T) {
	g := NewGraph([]domain.SkillDependency{edge("a", "b"), edge("a", "b")})
	assert.Equal(t, []string{"b"}, g.Dependents("a"))
	assert.Equal(t, []string{"b"}, g.UnlockCandidates([]string{"a"}))
}

func TestGraph_CycleMembers(t *testing.T) {
	acyclic := NewGraph([]domain.SkillDependency{edge("a", "b"), edge("b", "c"), edge("a", "c")})
	assert.Nil(t, acyclic.CycleMembers())

	cyclic := NewGraph([]domain.SkillDependency{
		edge("root", "a"),
		edge("a", "b"),
		edge("b", "a"),
		edge("b", "tail"),
	})
	assert.Equal(t, []string{"a", "b"}, cyclic.CycleMembers(), "tail is downstream, not on the cycle")

	selfLoop := NewGraph([]domain.SkillDependency{edge("x", "x"), edge("x", "y")})
	assert.Equal(t, []string{"x"}, selfLoop.CycleMembers())

	twoCycles := NewGraph([]domain.SkillDependency{
		edge("p", "q"), edge("q", "p"),
		edge("q", "r"),
		edge("r", "s"), edge("s", "r"),
	})
	assert.Equal(t, []string{"p", "q", "r", "s"}, twoCycles.CycleMembers())
}

func TestGraph_DependentsIsCopy(t *testing.T) {
	g := NewGraph([]domain.SkillDependency{edge("a", "b")})
	deps := g.Dependents("a")
	deps[0] = "mutated"
	assert.Equal(t, []string{"b"}, g.Dependents("a"))
}
