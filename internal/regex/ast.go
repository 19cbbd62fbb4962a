package regex

type nodeType int

const (
	nEmpty nodeType = iota // ε
	nChar
	nSet // character class
	nConcat
	nUnion
	nStar
	nPlus
	nQMark
	nRepeat // {m,n}
)

type node struct {
	typ         nodeType
	left, right *node

	ch       rune   // nChar
	set      []rune // nSet, sorted
	min, max int    // nRepeat; max -1 is unbounded
}
