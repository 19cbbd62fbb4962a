package regex

type nfaState struct {
	id    int
	eps   []*nfaState
	edges []nfaEdge
}

type nfaEdge struct {
	symbol rune
	to     *nfaState
}

// nfaFrag is a partial machine whose outs still need an ε edge to whatever
// follows.
type nfaFrag struct {
	start *nfaState
	outs  []*nfaState
}

// builder numbers states for one compilation.
type builder struct {
	states []*nfaState
}

func (b *builder) newState() *nfaState {
	s := &nfaState{id: len(b.states)}
	b.states = append(b.states, s)
	return s
}

func patchOuts(outs []*nfaState, to *nfaState) {
	for _, s := range outs {
		s.eps = append(s.eps, to)
	}
}

// Thompson construction.
func (b *builder) build(n *node) nfaFrag {
	switch n.typ {
	case nEmpty:
		s := b.newState()
		return nfaFrag{start: s, outs: []*nfaState{s}}
	case nChar:
		return b.symbols([]rune{n.ch})
	case nSet:
		return b.symbols(n.set)
	case nConcat:
		f1 := b.build(n.left)
		f2 := b.build(n.right)
		patchOuts(f1.outs, f2.start)
		return nfaFrag{start: f1.start, outs: f2.outs}
	case nUnion:
		s := b.newState()
		f1 := b.build(n.left)
		f2 := b.build(n.right)
		s.eps = append(s.eps, f1.start, f2.start)
		return nfaFrag{start: s, outs: append(f1.outs, f2.outs...)}
	case nStar:
		s := b.newState()
		f := b.build(n.left)
		patchOuts(f.outs, s)
		s.eps = append(s.eps, f.start)
		return nfaFrag{start: s, outs: []*nfaState{s}}
	case nPlus:
		f := b.build(n.left)
		s := b.newState()
		patchOuts(f.outs, s)
		s.eps = append(s.eps, f.start)
		return nfaFrag{start: f.start, outs: []*nfaState{s}}
	case nQMark:
		s := b.newState()
		f := b.build(n.left)
		s.eps = append(s.eps, f.start)
		return nfaFrag{start: s, outs: append(f.outs, s)}
	case nRepeat:
		return b.repeat(n)
	}
	panic("regex: unknown node type")
}

func (b *builder) symbols(set []rune) nfaFrag {
	s1 := b.newState()
	s2 := b.newState()
	for _, r := range set {
		s1.edges = append(s1.edges, nfaEdge{symbol: r, to: s2})
	}
	return nfaFrag{start: s1, outs: []*nfaState{s2}}
}

// repeat expands {m,n} into m mandatory copies followed by n-m optional ones;
// {m,} ends in a starred copy.
func (b *builder) repeat(n *node) nfaFrag {
	frag := b.build(&node{typ: nEmpty})
	for i := 0; i < n.min; i++ {
		piece := b.build(n.left)
		patchOuts(frag.outs, piece.start)
		frag.outs = piece.outs
	}
	if n.max == -1 {
		tail := b.build(&node{typ: nStar, left: n.left})
		patchOuts(frag.outs, tail.start)
		frag.outs = tail.outs
		return frag
	}
	for i := n.min; i < n.max; i++ {
		piece := b.build(&node{typ: nQMark, left: n.left})
		patchOuts(frag.outs, piece.start)
		frag.outs = piece.outs
	}
	return frag
}
