// SPDX-License-Identifier: EPL-2.0

package audio

// Node is an in-place processing stage over one buffer.
//
// The set of nodes is closed: the unexported method means only this package
// can add a kind. Chains are built from concrete node types through the
// generic Chain and Graph structs, so which code runs is fixed when the
// chain is constructed, never looked up while processing.
type Node interface {
	Process(b Buffer)
	node()
}

// Identity passes audio through unchanged.
type Identity struct{}

func (Identity) Process(Buffer) {}

func (Identity) node() {}

// Chain runs First and then Second on the same buffer. Chains nest, so
// Chain[Gain, Chain[Gain, *Fade]] is a three-stage node.
type Chain[A, B Node] struct {
	First  A
	Second B
}

func NewChain[A, B Node](first A, second B) Chain[A, B] {
	return Chain[A, B]{First: first, Second: second}
}

func (c Chain[A, B]) Process(b Buffer) {
	c.First.Process(b)
	c.Second.Process(b)
}

func (Chain[A, B]) node() {}

// Graph is the two-input topology of the mixer: InA and InB run on their
// own inputs, the results are summed into the output and Out runs on the sum.
type Graph[A, B, P Node] struct {
	InA A
	InB B
	Out P
}

func NewGraph[A, B, P Node](inA A, inB B, out P) Graph[A, B, P] {
	return Graph[A, B, P]{InA: inA, InB: inB, Out: out}
}

// Render processes a and b in place, mixes them into out and runs Out on the
// mixed prefix. It returns the number of samples mixed.
func (g Graph[A, B, P]) Render(a, b, out Buffer) int {
	g.InA.Process(a)
	g.InB.Process(b)
	n := Mix(a, b, out)
	g.Out.Process(out.Slice(0, n))
	return n
}
