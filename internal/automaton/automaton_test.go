package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ------------------------------------------------------------------- helpers

func tr(from string, sym Symbol, to ...string) Transition {
	return Transition{From: Name(from), Symbol: sym, To: Names(to...)}
}

// q0 --a--> q1, q1 --b--> q1, accept q1.
func scenario(t *testing.T) *Automaton {
	t.Helper()
	a, err := New(
		Names("q0", "q1"),
		[]Symbol{"a", "b"},
		[]Transition{tr("q0", "a", "q1"), tr("q1", "b", "q1")},
		Name("q0"),
		Names("q1"),
	)
	require.NoError(t, err)
	return a
}

// words lists every word over alpha up to maxLen symbols, the empty word first.
func words(alpha []Symbol, maxLen int) [][]Symbol {
	out := [][]Symbol{{}}
	layer := [][]Symbol{{}}
	for n := 0; n < maxLen; n++ {
		var next [][]Symbol
		for _, w := range layer {
			for _, s := range alpha {
				nw := append(append([]Symbol{}, w...), s)
				next = append(next, nw)
			}
		}
		out = append(out, next...)
		layer = next
	}
	return out
}

// ------------------------------------------------------------------- construction

func TestNewRejectsBrokenInvariants(t *testing.T) {
	alpha := []Symbol{"a"}
	tests := []struct {
		name   string
		states []State
		alpha  []Symbol
		trans  []Transition
		start  State
		accept []State
		code   InvariantCode
	}{
		{"no states", nil, alpha, nil, Name("q0"), nil, ErrCodeNoStates},
		{"nil state", []State{Name("q0"), nil}, alpha, nil, Name("q0"), nil, ErrCodeNilState},
		{"nil start", Names("q0"), alpha, nil, nil, nil, ErrCodeNilState},
		{"empty symbol", Names("q0"), []Symbol{""}, nil, Name("q0"), nil, ErrCodeEmptySymbol},
		{"start outside", Names("q0"), alpha, nil, Name("q9"), nil, ErrCodeStartNotInStates},
		{"accept outside", Names("q0"), alpha, nil, Name("q0"), Names("q9"), ErrCodeAcceptNotInStates},
		{"unknown source", Names("q0"), alpha, []Transition{tr("q9", "a", "q0")}, Name("q0"), nil, ErrCodeUnknownSource},
		{"unknown target", Names("q0"), alpha, []Transition{tr("q0", "a", "q9")}, Name("q0"), nil, ErrCodeUnknownTarget},
		{"unknown symbol", Names("q0"), alpha, []Transition{tr("q0", "z", "q0")}, Name("q0"), nil, ErrCodeUnknownSymbol},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := New(tt.states, tt.alpha, tt.trans, tt.start, tt.accept)
			require.Error(t, err)
			assert.Nil(t, a)
			assert.True(t, IsInvariantError(err, tt.code), "got %v", err)
		})
	}
}

func TestInvariantErrorMessage(t *testing.T) {
	_, err := New(Names("q0"), []Symbol{"a"}, []Transition{tr("q0", "z", "q0")}, Name("q0"), nil)
	require.Error(t, err)
	assert.Equal(t, "TRANSITION_SYMBOL_UNKNOWN: transition symbol is not in the alphabet (state=q0, symbol=z)", err.Error())
}

func TestNewMergesRepeatedTransitions(t *testing.T) {
	a := MustNew(
		Names("q0", "q1", "q2"),
		[]Symbol{"a"},
		[]Transition{tr("q0", "a", "q2"), tr("q0", "a", "q1", "q2")},
		Name("q0"),
		nil,
	)
	got := a.Transitions()
	require.Len(t, got, 1)
	assert.Equal(t, Names("q1", "q2"), got[0].To)
}

func TestNewCopiesInput(t *testing.T) {
	states := Names("q0", "q1")
	trans := []Transition{tr("q0", "a", "q1")}
	a := MustNew(states, []Symbol{"a"}, trans, Name("q0"), Names("q1"))

	states[1] = Name("zz")
	trans[0].To[0] = Name("zz")
	assert.True(t, a.AcceptsString("a"))
	assert.Equal(t, Names("q0", "q1"), a.States())
}

// ------------------------------------------------------------------- accepts

func TestAcceptsScenario(t *testing.T) {
	a := scenario(t)
	assert.True(t, a.AcceptsString("ab"))
	assert.True(t, a.AcceptsString("abbb"))
	assert.False(t, a.AcceptsString("ba"))
	assert.False(t, a.AcceptsString(""), "start state is not accepting")
}

// The lab walkthrough lists "a" as rejected, but q0 --a--> q1 ends in the
// accepting q1, so the word is accepted.
func TestAcceptsSingleAContradictsLabWalkthrough(t *testing.T) {
	a := scenario(t)
	assert.True(t, a.AcceptsString("a"))
	assert.Equal(t, [][]State{Names("q0"), Names("q1")}, a.Trace(Symbols("a")))
}

func TestAcceptsRejectsGaps(t *testing.T) {
	a := scenario(t)
	assert.False(t, a.AcceptsString("ac"), "symbol outside the alphabet")
	assert.False(t, a.AcceptsString("aa"), "missing transition")
	assert.False(t, a.Accepts([]Symbol{"ab"}))
}

func TestAcceptsIsRepeatable(t *testing.T) {
	a := scenario(t)
	for _, w := range words(a.Alphabet(), 4) {
		first := a.Accepts(w)
		for i := 0; i < 3; i++ {
			assert.Equal(t, first, a.Accepts(w), "word %v", w)
		}
	}
}

func TestAcceptsFollowsSmallestTarget(t *testing.T) {
	a := MustNew(
		Names("q0", "q1", "q2"),
		[]Symbol{"a"},
		[]Transition{tr("q0", "a", "q2", "q1")},
		Name("q0"),
		Names("q2"),
	)
	assert.False(t, a.AcceptsString("a"))
	assert.True(t, a.Simulate(Symbols("a")))
}

// ------------------------------------------------------------------- determinism

func TestIsDeterministic(t *testing.T) {
	complete := MustNew(
		Names("even", "odd"),
		[]Symbol{"1"},
		[]Transition{tr("even", "1", "odd"), tr("odd", "1", "even")},
		Name("even"),
		Names("even"),
	)
	branching := MustNew(
		Names("q0", "q1", "q2"),
		[]Symbol{"a"},
		[]Transition{tr("q0", "a", "q1", "q2"), tr("q1", "a", "q1"), tr("q2", "a", "q2")},
		Name("q0"),
		nil,
	)
	empty := MustNew(Names("q0"), nil, nil, Name("q0"), Names("q0"))

	tests := []struct {
		name          string
		a             *Automaton
		deterministic bool
		singleValued  bool
	}{
		{"partial", scenario(t), false, true},
		{"cycle is reported", complete, false, true},
		{"several targets", branching, false, false},
		{"no symbols", empty, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.deterministic, tt.a.IsDeterministic())
			assert.Equal(t, tt.singleValued, tt.a.IsSingleValued())
		})
	}
}

func TestIsDeterministicRevisitedState(t *testing.T) {
	// q0 reaches q2 through both q1 and q3.
	a := MustNew(
		Names("q0", "q1", "q2", "q3"),
		[]Symbol{"a", "b"},
		[]Transition{
			tr("q0", "a", "q1"), tr("q0", "b", "q3"),
			tr("q1", "a", "q2"), tr("q1", "b", "q2"),
			tr("q3", "a", "q2"), tr("q3", "b", "q2"),
			tr("q2", "a", "q2"), tr("q2", "b", "q2"),
		},
		Name("q0"),
		Names("q2"),
	)
	assert.False(t, a.IsDeterministic())
	assert.True(t, a.IsSingleValued())
}

func TestIsSingleValuedAllowsMissingTransitions(t *testing.T) {
	// q0 has no b move and q1 no a move.
	assert.True(t, scenario(t).IsSingleValued())

	nfa := MustNew(
		Names("q0", "q1", "q2"),
		[]Symbol{"a", "b"},
		[]Transition{tr("q0", "a", "q0", "q1"), tr("q1", "b", "q2")},
		Name("q0"),
		Names("q2"),
	)
	assert.False(t, nfa.IsSingleValued())

	dfa := nfa.ConvertToDFA()
	assert.Empty(t, dfa.Targets(NewSubsetState(Name("q0")), "b"), "empty union has no transition")
	assert.True(t, dfa.IsSingleValued())
}

func TestReachable(t *testing.T) {
	a := MustNew(
		Names("q0", "q1", "lost"),
		[]Symbol{"a"},
		[]Transition{tr("q0", "a", "q1"), tr("lost", "a", "q0")},
		Name("q0"),
		nil,
	)
	assert.Equal(t, Names("q0", "q1"), a.Reachable())
}

// ------------------------------------------------------------------- format

func TestString(t *testing.T) {
	want := "Finite Automaton:\n" +
		"States: {q0, q1}\n" +
		"Alphabet: {a, b}\n" +
		"Transitions:\n" +
		"q0 --a--> {q1}\n" +
		"q1 --b--> {q1}\n" +
		"Start state: q0\n" +
		"Accept states: {q1}\n"
	assert.Equal(t, want, scenario(t).String())
}

func TestTrace(t *testing.T) {
	a := MustNew(
		Names("q0", "q1", "q2"),
		[]Symbol{"a", "b"},
		[]Transition{tr("q0", "a", "q0", "q1"), tr("q0", "b", "q0"), tr("q1", "b", "q2")},
		Name("q0"),
		Names("q2"),
	)
	assert.Equal(t, [][]State{
		Names("q0"),
		Names("q0", "q1"),
		Names("q0", "q2"),
	}, a.Trace(Symbols("ab")))

	// an unknown symbol ends the trace
	assert.Equal(t, [][]State{Names("q0")}, a.Trace(Symbols("zab")))
}
