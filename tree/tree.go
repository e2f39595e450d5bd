/*
Tree Module - Arena-Indexed Expression Tree
=============================================

This module implements the operator-precedence tree that the line parser
builds incrementally, one character at a time, with no separate
tokenizer pass. Nodes live in a flat arena and refer to each other by
index rather than by pointer, per the reshape recommended for the
original raw-pointer sketch: ownership is trivial (the arena owns every
node; dropping the arena drops the tree) and there is nothing to relocate
or leak.

insertInParent is the one operation that does real work: given a cursor
and a new operator, it walks parent links until it finds the correct
attachment point for the operator's precedence and associativity, then
rewrites two slots to splice the new node in. Every other tree mutation
(committing a literal, opening/closing parens, advancing past a comma)
is a small, local edit around that primitive.
*/

package tree

import (
	"fmt"
	"math"

	"axion/catalog"
	"axion/number"
	"axion/unit"
)

// Op is an expression tree operator variant.
type Op int

const (
	Head Op = iota
	Working
	Number
	Func
	Parens
	Neg
	Expon
	Mul
	Div
	Add
	Sub
)

// noChild marks an unused child slot.
const noChild = -1

// label returns the precedence label used by insertInParent: higher
// binds tighter. Head is given an unreachable-high label since it is
// the root sentinel and is never re-parented.
func label(op Op) int {
	switch op {
	case Head:
		return math.MaxInt32
	case Func, Parens:
		return 5
	case Neg:
		return 4
	case Expon:
		return 3
	case Mul, Div:
		return 2
	case Add, Sub:
		return 1
	default: // Working, Number
		return 0
	}
}

// Node is one entry in the arena.
type Node struct {
	Op       Op
	Name     string         // function name, when Op == Func
	Value    number.Number  // literal value, when Op == Number
	Parent   int            // index of the parent node; the root's is noChild
	Children [2]int         // child indices; unused slots are noChild
}

// Error is a parse- or evaluation-time failure raised by the tree.
type Error struct {
	Kind    string
	Message string
}

func (e *Error) Error() string { return e.Message }

func errf(kind, format string, args ...interface{}) error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Tree is the arena owning every node built for one input line. The
// zero value is not usable; construct one with New.
type Tree struct {
	nodes []Node
}

// New builds a fresh tree: a Head sentinel with a single Working child,
// and returns the tree together with a cursor pointing at that child —
// the position the line parser starts mutating from.
func New() (*Tree, int) {
	t := &Tree{}
	head := t.alloc(Node{Op: Head, Parent: noChild, Children: [2]int{noChild, noChild}})
	cursor := t.alloc(Node{Op: Working, Parent: head, Children: [2]int{noChild, noChild}})
	t.nodes[head].Children[0] = cursor
	return t, cursor
}

func (t *Tree) alloc(n Node) int {
	t.nodes = append(t.nodes, n)
	return len(t.nodes) - 1
}

func (t *Tree) node(ix int) *Node { return &t.nodes[ix] }

// ensureChildren lazily allocates a node's two Working child slots the
// first time something needs to descend into it.
func (t *Tree) ensureChildren(ix int) {
	n := t.node(ix)
	if n.Children[0] != noChild {
		return
	}
	c0 := t.alloc(Node{Op: Working, Parent: ix, Children: [2]int{noChild, noChild}})
	c1 := t.alloc(Node{Op: Working, Parent: ix, Children: [2]int{noChild, noChild}})
	t.node(ix).Children = [2]int{c0, c1}
}

// firstWorkingChild returns the index of ix's first child whose
// operator is still Working, allocating children if none exist yet.
func (t *Tree) firstWorkingChild(ix int) int {
	t.ensureChildren(ix)
	for _, c := range t.node(ix).Children {
		if c != noChild && t.node(c).Op == Working {
			return c
		}
	}
	// Every catalog function is unary and MAX_ARGS is 2, so this is
	// unreachable for any tree this package itself builds.
	panic("tree: no working child slot available")
}

// insertInParent walks parent links from cursor, climbing past any
// ancestor that binds at least as tightly as op, and stops at the first
// ancestor that does not. Neg, Parens, Func and the Head sentinel all
// carry a label of 4 or higher — above every binary operator's label —
// so they act as hard ceilings the walk never climbs past, regardless of
// op: this is what keeps a parenthesized or function-call group (and a
// unary minus's own operand) self-contained. Among the binary operators
// themselves (label 1-3) the walk climbs past anything binding
// tight-or-equal for a left-associative op, but only past anything
// binding strictly tighter for Expon, so a chain of exponents nests to
// the right instead of the left.
//
// It then splices a new node with operator op into the stopping parent's
// child slot, with the displaced subtree re-parented as the new node's
// first child and a fresh Working placeholder as its second.
func (t *Tree) insertInParent(cursor int, op Op) int {
	child := cursor
	parent := t.node(cursor).Parent
	threshold := label(op)

	for {
		pLabel := label(t.node(parent).Op)
		if pLabel >= 4 {
			break
		}
		continueWalk := pLabel >= threshold
		if op == Expon {
			continueWalk = pLabel > threshold
		}
		if !continueWalk {
			break
		}
		child = parent
		parent = t.node(parent).Parent
	}

	slot := 0
	if t.node(parent).Children[0] != child {
		slot = 1
	}

	newIx := t.alloc(Node{Op: op, Parent: parent, Children: [2]int{noChild, noChild}})
	t.node(parent).Children[slot] = newIx

	t.node(child).Parent = newIx
	fresh := t.alloc(Node{Op: Working, Parent: newIx, Children: [2]int{noChild, noChild}})
	t.node(newIx).Children = [2]int{child, fresh}

	return newIx
}

// Commit resolves a buffered word or numeric token at cursor. If the
// cursor is not currently Working (an atom is already sitting there),
// an implicit multiplication is spliced in first, realizing
// juxtaposition ("2 pi", "3cm", "2(x)"). The token is then resolved via
// number.Parse; on success the cursor becomes a Number literal, on
// failure a provisional Func(name) that only becomes a real call if an
// open paren immediately follows.
func (t *Tree) Commit(cursor int, token string) int {
	// A numeric literal with a unit suffix ("4cm") is committed as the
	// number and the unit juxtaposed, so a following '^' binds to the
	// unit alone: "4cm^2" is 4*(cm^2).
	if token != "" && token[0] >= '0' && token[0] <= '9' {
		if _, err := number.Parse(token); err == nil {
			for i := 1; i < len(token); i++ {
				if _, ok := catalog.UNITS[token[i:]]; ok {
					cursor = t.Commit(cursor, token[:i])
					token = token[i:]
					break
				}
			}
		}
	}

	if t.node(cursor).Op != Working {
		mulIx := t.insertInParent(cursor, Mul)
		cursor = t.firstWorkingChild(mulIx)
	}

	if n, err := number.Parse(token); err == nil {
		t.node(cursor).Op = Number
		t.node(cursor).Value = n
	} else {
		t.node(cursor).Op = Func
		t.node(cursor).Name = token
	}
	return cursor
}

// InsertOperator splices a binary operator (Mul, Div, Add, or Expon) at
// cursor and returns the new cursor: the spliced node's working child.
func (t *Tree) InsertOperator(cursor int, op Op) int {
	newIx := t.insertInParent(cursor, op)
	return t.firstWorkingChild(newIx)
}

// InsertMinus disambiguates unary negation from binary subtraction: a
// '-' at a still-Working cursor is negation, otherwise it is
// subtraction of whatever already occupies the cursor.
func (t *Tree) InsertMinus(cursor int) int {
	op := Sub
	if t.node(cursor).Op == Working {
		op = Neg
	}
	newIx := t.insertInParent(cursor, op)
	return t.firstWorkingChild(newIx)
}

// OpenParen handles '('. If the cursor holds a provisional Func(name),
// it first descends into the function's body. Otherwise, if the cursor
// already holds a completed atom (a number, a closed Parens group, and
// so on) rather than an empty Working slot, an implicit Mul is spliced
// in first — the same juxtaposition rule Commit applies — so "2(3+1)"
// parses as 2*(3+1) rather than clobbering the "2" already there.
// Either way, the node now at cursor is converted in place into Parens
// and the cursor advances into its working child.
func (t *Tree) OpenParen(cursor int) int {
	switch {
	case t.node(cursor).Op == Func:
		cursor = t.firstWorkingChild(cursor)
	case t.node(cursor).Op != Working:
		mulIx := t.insertInParent(cursor, Mul)
		cursor = t.firstWorkingChild(mulIx)
	}
	t.node(cursor).Op = Parens
	return t.firstWorkingChild(cursor)
}

// CloseParen handles ')': it walks parents from cursor until it finds a
// node whose precedence is not below Parens/Func's label, and returns
// that node as the new cursor. Reaching Head first (never below that
// label) without finding a Parens or Func means there was no matching
// open paren.
func (t *Tree) CloseParen(cursor int) (int, error) {
	node := cursor
	for label(t.node(node).Op) < label(Parens) {
		node = t.node(node).Parent
	}
	if t.node(node).Op == Parens || t.node(node).Op == Func {
		return node, nil
	}
	return 0, errf("UnbalancedParens", "too many )")
}

// Comma handles ','. It is legal only when cursor's direct parent is a
// Func node, and advances the cursor to the sibling slot immediately
// after this one. OpenParen wraps a call's argument in a Parens node, so
// a comma directly after an argument inside "f(a, b)" sees a Parens
// parent and is rejected with BadComma.
func (t *Tree) Comma(cursor int) (int, error) {
	parent := t.node(cursor).Parent
	if parent == noChild || t.node(parent).Op != Func {
		return 0, errf("BadComma", "you cannot use , except in a function call")
	}
	slot := 0
	if t.node(parent).Children[0] != cursor {
		slot = 1
	}
	next := slot + 1
	if next >= len(t.node(parent).Children) || t.node(parent).Children[next] == noChild {
		return 0, errf("BadComma", "no further argument slot")
	}
	return t.node(parent).Children[next], nil
}

// Root returns the sole child of the Head sentinel: the expression
// actually parsed.
func (t *Tree) Root() int {
	return t.node(0).Children[0]
}

// Calculate evaluates node ix by a post-order fold over the tree,
// dispatching binary and unary operators to the number algebra and
// function calls to the FUNCTIONS catalog.
func (t *Tree) Calculate(ix int) (number.Number, error) {
	n := t.node(ix)
	switch n.Op {
	case Working:
		return number.Number{}, errf("ParseIncomplete", "the expression is incomplete")

	case Number:
		return n.Value, nil

	case Head, Parens:
		return t.Calculate(n.Children[0])

	case Mul:
		l, r, err := t.calculateBoth(n)
		if err != nil {
			return number.Number{}, err
		}
		return number.Mul(l, r), nil

	case Div:
		l, r, err := t.calculateBoth(n)
		if err != nil {
			return number.Number{}, err
		}
		return number.Div(l, r), nil

	case Add:
		l, r, err := t.calculateBoth(n)
		if err != nil {
			return number.Number{}, err
		}
		return number.Add(l, r)

	case Sub:
		l, r, err := t.calculateBoth(n)
		if err != nil {
			return number.Number{}, err
		}
		return number.Sub(l, r)

	case Expon:
		l, r, err := t.calculateBoth(n)
		if err != nil {
			return number.Number{}, err
		}
		return number.Expon(l, r)

	case Neg:
		v, err := t.Calculate(n.Children[0])
		if err != nil {
			return number.Number{}, err
		}
		return number.Neg(v), nil

	case Func:
		return t.calculateFunc(n)
	}

	return number.Number{}, errf("ParseIncomplete", "unreachable node")
}

func (t *Tree) calculateBoth(n *Node) (number.Number, number.Number, error) {
	l, err := t.Calculate(n.Children[0])
	if err != nil {
		return number.Number{}, number.Number{}, err
	}
	r, err := t.Calculate(n.Children[1])
	if err != nil {
		return number.Number{}, number.Number{}, err
	}
	return l, r, nil
}

func (t *Tree) calculateFunc(n *Node) (number.Number, error) {
	hasArg := n.Children[0] != noChild

	entry, ok := catalog.FUNCTIONS[n.Name]
	if !ok {
		if !hasArg {
			return number.Number{}, errf("UnknownName", fmt.Sprintf("unknown name %q", n.Name))
		}
		return number.Number{}, errf("UnsupportedFunction", fmt.Sprintf("the function %q is not supported", n.Name))
	}
	if !hasArg {
		return number.Number{}, errf("UnsupportedFunction", fmt.Sprintf("%q was used as a bare name, not called", n.Name))
	}

	arg, err := t.Calculate(n.Children[0])
	if err != nil {
		return number.Number{}, err
	}
	if entry.UnitScale == 0 && !unit.IsDimensionless(arg.U) {
		return number.Number{}, errf("DimensionMismatch", fmt.Sprintf("%s requires a dimensionless argument", n.Name))
	}
	return number.Number{Q: entry.F(arg.Q), U: unit.Scale(arg.U, entry.UnitScale)}, nil
}
