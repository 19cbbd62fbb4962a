package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// endsInAB accepts words over {a,b} ending in "ab".
func endsInAB() *Automaton {
	return MustNew(
		Names("q0", "q1", "q2"),
		[]Symbol{"a", "b"},
		[]Transition{
			tr("q0", "a", "q0", "q1"),
			tr("q0", "b", "q0"),
			tr("q1", "b", "q2"),
		},
		Name("q0"),
		Names("q2"),
	)
}

func TestConvertToDFAStructure(t *testing.T) {
	nfa := endsInAB()
	dfa := nfa.ConvertToDFA()

	start, ok := dfa.Start().(SubsetState)
	require.True(t, ok)
	assert.Equal(t, "{q0}", start.String())

	var names []string
	for _, s := range dfa.States() {
		_, isSubset := s.(SubsetState)
		require.True(t, isSubset)
		names = append(names, s.String())
	}
	assert.ElementsMatch(t, []string{"{q0}", "{q0,q1}", "{q0,q2}"}, names)
	require.Len(t, dfa.AcceptStates(), 1)
	assert.Equal(t, "{q0,q2}", dfa.AcceptStates()[0].String())

	assert.True(t, dfa.IsSingleValued())
	assert.Equal(t, nfa.Alphabet(), dfa.Alphabet())
}

func TestConvertToDFALeavesReceiverAlone(t *testing.T) {
	nfa := endsInAB()
	before := nfa.String()
	_ = nfa.ConvertToDFA()
	assert.Equal(t, before, nfa.String())
}

func TestConvertToDFAMatchesSimulation(t *testing.T) {
	nfa := endsInAB()
	dfa := nfa.ConvertToDFA()
	for _, w := range words(nfa.Alphabet(), 6) {
		assert.Equal(t, nfa.Simulate(w), dfa.Accepts(w), "word %v", w)
	}
}

func TestConvertToDFAKeepsDeterministicLanguage(t *testing.T) {
	a := scenario(t)
	dfa := a.ConvertToDFA()
	for _, w := range words(a.Alphabet(), 5) {
		assert.Equal(t, a.Accepts(w), dfa.Accepts(w), "word %v", w)
	}
	assert.Len(t, dfa.States(), 2)
}

func TestConvertToDFACollapsesEqualSubsets(t *testing.T) {
	// {q1,q2} is reached from {q0} on a and on b.
	a := MustNew(
		Names("q0", "q1", "q2"),
		[]Symbol{"a", "b"},
		[]Transition{
			tr("q0", "a", "q1", "q2"),
			tr("q0", "b", "q2", "q1"),
		},
		Name("q0"),
		Names("q2"),
	)
	dfa := a.ConvertToDFA()
	assert.Len(t, dfa.States(), 2)

	trans := dfa.Transitions()
	require.Len(t, trans, 2)
	assert.Equal(t, trans[0].To[0].Key(), trans[1].To[0].Key())
}

func TestConvertToDFATwice(t *testing.T) {
	nfa := endsInAB()
	again := nfa.ConvertToDFA().ConvertToDFA()

	inner, ok := again.Start().(SubsetState)
	require.True(t, ok)
	require.Equal(t, 1, inner.Len())
	_, nested := inner.Members()[0].(SubsetState)
	assert.True(t, nested)

	for _, w := range words(nfa.Alphabet(), 5) {
		assert.Equal(t, nfa.Simulate(w), again.Accepts(w), "word %v", w)
	}
}

func TestConvertToDFAAcceptingStart(t *testing.T) {
	a := MustNew(Names("q0"), []Symbol{"a"}, nil, Name("q0"), Names("q0"))
	dfa := a.ConvertToDFA()
	assert.True(t, dfa.Accepts(nil))
	assert.False(t, dfa.AcceptsString("a"))
	assert.Empty(t, dfa.Transitions())
}

func TestSubsetState(t *testing.T) {
	s := NewSubsetState(Name("b"), Name("a"), Name("b"))
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, "{a,b}", s.String())
	assert.True(t, s.Contains(Name("a")))
	assert.False(t, s.Contains(Name("c")))
	assert.Equal(t, s.Key(), NewSubsetState(Name("a"), Name("b")).Key())
	assert.NotEqual(t, Name("{a}").Key(), NewSubsetState(Name("a")).Key())
	assert.Equal(t, "{}", SubsetState{}.Key())
}

// ------------------------------------------------------------------- regular grammar

func TestToRegularGrammarScenario(t *testing.T) {
	want := "<q0> -> a\n" +
		"<q1> -> b\n" +
		"S -> <q0>"
	assert.Equal(t, want, scenario(t).ToRegularGrammar())
}

func TestToRegularGrammarNonAcceptingTarget(t *testing.T) {
	a := MustNew(
		Names("q0", "q1", "q2"),
		[]Symbol{"a", "b"},
		[]Transition{tr("q0", "a", "q1"), tr("q1", "b", "q2"), tr("q2", "a", "q1")},
		Name("q0"),
		Names("q2"),
	)
	want := []string{
		"<q1> -> b<q2>",
		"<q0> -> <q1> a",
		"<q1> -> b",
		"<q1> -> b<q2>",
		"<q2> -> <q1> a",
		"S -> <q0>",
	}
	assert.Equal(t, want, a.RegularGrammarRules())
}

func TestToRegularGrammarDeadTarget(t *testing.T) {
	a := MustNew(Names("q0", "q1"), []Symbol{"a"}, []Transition{tr("q0", "a", "q1")}, Name("q0"), nil)
	assert.Equal(t, []string{"<q1> ->", "<q0> -> <q1> a", "S -> <q0>"}, a.RegularGrammarRules())
}

// ------------------------------------------------------------------- minimize / equivalence

func TestMinimizeMergesEquivalentStates(t *testing.T) {
	a := MustNew(
		Names("q0", "q1", "q2", "q3"),
		[]Symbol{"a", "b"},
		[]Transition{
			tr("q0", "a", "q1"), tr("q0", "b", "q2"),
			tr("q1", "a", "q3"), tr("q2", "a", "q3"),
		},
		Name("q0"),
		Names("q3"),
	)
	m := Minimize(a)
	assert.Len(t, m.States(), 3)
	assert.True(t, Equivalent(a, m))
	for _, w := range words(a.Alphabet(), 4) {
		assert.Equal(t, a.Accepts(w), m.Accepts(w), "word %v", w)
	}
}

func TestMinimizeDeterminisesFirst(t *testing.T) {
	nfa := endsInAB()
	m := Minimize(nfa)
	assert.Len(t, m.States(), 3)
	for _, w := range words(nfa.Alphabet(), 6) {
		assert.Equal(t, nfa.Simulate(w), m.Accepts(w), "word %v", w)
	}
}

func TestEquivalent(t *testing.T) {
	nfa := endsInAB()
	assert.True(t, Equivalent(nfa, nfa.ConvertToDFA()))
	assert.True(t, Equivalent(nfa, Minimize(nfa)))
	assert.False(t, Equivalent(nfa, scenario(t)))

	// same language over a larger alphabet is still equal
	wider := MustNew(
		Names("q0", "q1"),
		[]Symbol{"a", "b", "c"},
		[]Transition{tr("q0", "a", "q1"), tr("q1", "b", "q1")},
		Name("q0"),
		Names("q1"),
	)
	assert.True(t, Equivalent(scenario(t), wider))
}
