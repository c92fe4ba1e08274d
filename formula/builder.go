package formula

// Builder assembles a formula tree the way a parser does: terminals and
// operators are pushed as they are recognized, and the builder keeps its own
// operand stack. It is not used once Tree has been called; nothing else in
// this module depends on Builder after construction.
type Builder struct {
	stack []*Node
}

// PushTerminal pushes a leaf (VAR, NEXT_VAR or CONST node) onto the operand
// stack.
func (b *Builder) PushTerminal(n *Node) {
	b.stack = append(b.stack, n)
}

// PushOperator pops the operands conn needs (one for NEG, two otherwise) and
// pushes the resulting node. It panics if the stack holds too few operands,
// which indicates a malformed grammar, a parser bug, not a specification
// error.
func (b *Builder) PushOperator(conn Kind) {
	if conn == NEG {
		n := b.pop()
		b.stack = append(b.stack, Neg(n))
		return
	}
	r := b.pop()
	l := b.pop()
	b.stack = append(b.stack, &Node{Kind: conn, Left: l, Right: r})
}

func (b *Builder) pop() *Node {
	n := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]
	return n
}

// Tree returns the single remaining operand, the completed formula. It
// panics if the builder does not hold exactly one operand.
func (b *Builder) Tree() *Node {
	if len(b.stack) != 1 {
		panic("formula: Builder.Tree called with an unbalanced operand stack")
	}
	return b.stack[0]
}

// List accumulates formulas into an ordered slice (e.g. the conjuncts of
// env_trans as the grammar encounters them across multiple declarations),
// which Merge then folds into one tree. This is the explicit, non-overloaded
// stand-in for the original "right-child-null chain" use of the tree type as
// a list: see model.VarEnv for the variable-name counterpart.
type List struct {
	items []*Node
}

// AppendListItem appends n to the list.
func (l *List) AppendListItem(n *Node) {
	l.items = append(l.items, n)
}

// RemoveListItem removes the item at index i, used when the parser
// backtracks over a malformed declaration.
func (l *List) RemoveListItem(i int) {
	l.items = append(l.items[:i], l.items[i+1:]...)
}

// Items returns the accumulated list, in declaration order.
func (l *List) Items() []*Node {
	return l.items
}
