package automaton

import (
	"sort"
	"strconv"
	"strings"
)

// State identifies an automaton state. Two states are the same state when their
// keys are equal.
type State interface {
	Key() string
	String() string
}

// Name is an atomic state identifier.
type Name string

func (n Name) Key() string    { return strconv.Quote(string(n)) }
func (n Name) String() string { return string(n) }

// SubsetState is a set of states used as a single state of a determinised
// automaton. The zero value is the empty set.
type SubsetState struct {
	members []State
	key     string
}

// NewSubsetState builds the set of the given states, dropping duplicates.
func NewSubsetState(states ...State) SubsetState {
	byKey := make(map[string]State, len(states))
	for _, s := range states {
		if s == nil {
			continue
		}
		byKey[s.Key()] = s
	}
	keys := make([]string, 0, len(byKey))
	for k := range byKey {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	members := make([]State, len(keys))
	for i, k := range keys {
		members[i] = byKey[k]
	}
	return SubsetState{members: members, key: "{" + strings.Join(keys, ",") + "}"}
}

func (s SubsetState) Key() string {
	if s.key == "" {
		return "{}"
	}
	return s.key
}

func (s SubsetState) String() string {
	names := make([]string, len(s.members))
	for i, m := range s.members {
		names[i] = m.String()
	}
	return "{" + strings.Join(names, ",") + "}"
}

// Members returns the states of the set ordered by key.
func (s SubsetState) Members() []State {
	out := make([]State, len(s.members))
	copy(out, s.members)
	return out
}

func (s SubsetState) Len() int { return len(s.members) }

func (s SubsetState) Contains(st State) bool {
	if st == nil {
		return false
	}
	k := st.Key()
	i := sort.Search(len(s.members), func(i int) bool { return s.members[i].Key() >= k })
	return i < len(s.members) && s.members[i].Key() == k
}

// Names converts plain identifiers into atomic states.
func Names(names ...string) []State {
	out := make([]State, len(names))
	for i, n := range names {
		out[i] = Name(n)
	}
	return out
}

func sortStates(states []State) {
	sort.Slice(states, func(i, j int) bool { return states[i].Key() < states[j].Key() })
}
