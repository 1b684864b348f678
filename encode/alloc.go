package encode

// A Kind tells which family a semantic variable belongs to.
type Kind byte

const (
	KindNode Kind = iota
	KindEdge
	KindCounter
)

// A Category tells apart the counter chains of an encoding, so that
// independent cardinality constraints never share cells.
type Category byte

const (
	SizeU Category = iota // at most n nodes in U
	SizeW                 // at most n nodes outside U
	Cut                   // at most k crossing edges
)

func (c Category) String() string {
	switch c {
	case SizeU:
		return "sizeU"
	case SizeW:
		return "sizeW"
	case Cut:
		return "cut"
	}
	return "unknown"
}

// A Key names a semantic variable: one per node, one per edge and one per
// counter cell (i, j) of a cardinality chain.
type Key struct {
	Kind Kind
	Cat  Category // only meaningful for counter keys
	I, J int
}

// NodeKey returns the key of the variable for node i.
func NodeKey(i int) Key {
	return Key{Kind: KindNode, I: i}
}

// EdgeKey returns the key of the variable for edge j.
func EdgeKey(j int) Key {
	return Key{Kind: KindEdge, I: j}
}

// CounterKey returns the key of counter cell (i, j) of the chain cat.
func CounterKey(cat Category, i, j int) Key {
	return Key{Kind: KindCounter, Cat: cat, I: i, J: j}
}

// An Allocator issues dense variable identifiers, starting at 1, in the
// order keys are first requested. It is owned by a single encoding pass and
// is not safe for concurrent use.
type Allocator struct {
	ids  map[Key]int
	next int
}

// NewAllocator returns an empty allocator.
func NewAllocator() *Allocator {
	return &Allocator{ids: make(map[Key]int), next: 1}
}

// ID returns the identifier for key, allocating a fresh one the first time
// the key is seen. Equal keys always map to the same identifier and two
// distinct keys never collide.
func (a *Allocator) ID(key Key) int {
	if id, ok := a.ids[key]; ok {
		return id
	}
	id := a.next
	a.next++
	a.ids[key] = id
	return id
}

// Lookup returns the identifier already allocated for key, without ever
// allocating. The decoder uses it so a bogus key cannot mint a variable.
func (a *Allocator) Lookup(key Key) (int, bool) {
	id, ok := a.ids[key]
	return id, ok
}

// NbVars returns the number of identifiers allocated so far.
func (a *Allocator) NbVars() int {
	return a.next - 1
}
