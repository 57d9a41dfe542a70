package calc

import (
	"strings"
)

// node is a node in the abstract syntax tree of an expression.
type node struct {
	kind nodeKind

	name string
	val  Value

	left  *node
	right *node
}

type nodeKind int8

const (
	nodeNone nodeKind = iota

	nodeNum   // push num
	nodeName  // push lookup(name)
	nodeValue // push val, for functions built during evaluation

	nodeApply  // apply left to right, multiplying numbers
	nodeCall   // apply left to right, which must be a function call
	nodeLambda // function with parameter name and body left
	nodeAssign // bind name to left, only at top level

	nodeNeg     // evaluate left, then negate
	nodeNop     // evaluate left
	nodeAdd     // evaluate left, add right
	nodeSub     // evaluate left, sub right
	nodeMul     // evaluate left, mul right
	nodeDiv     // evaluate left, div by right
	nodePow     // evaluate left, exp by right
	nodeConvert // evaluate left, convert to right
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=nodeKind -trimprefix=node

func (n *node) String() string {
	var b strings.Builder
	n.fmt(&b, false, false)
	return b.String()
}

// fmt writes the tree with every term grouped in alternating round and square
// brackets.
func (n *node) fmt(b *strings.Builder, square, alt bool) {
	if n.kind == nodeAssign {
		// Assignments only appear at the top, so they are never grouped.
		b.WriteString(n.name)
		b.WriteString(" = ")
		n.left.fmt(b, !square, alt)
		return
	}
	var l, r byte = '(', ')'
	if square {
		l, r = '[', ']'
	}
	b.WriteByte(l)
	defer b.WriteByte(r)
	switch n.kind {
	case nodeNone:
		// Invalid nodes use invalid characters.
		b.WriteByte('$')
		if n.left != nil {
			n.left.fmt(b, square, alt)
		}
		b.WriteByte('#')
		if n.right != nil {
			n.right.fmt(b, square, alt)
		}
		b.WriteByte('$')
	case nodeNum, nodeName:
		b.WriteString(n.name)
	case nodeValue:
		b.WriteString(valueString(n.val))
	case nodeApply:
		n.left.fmt(b, !square, alt)
		b.WriteByte(' ')
		n.right.fmt(b, !square, alt)
	case nodeCall:
		n.left.fmt(b, !square, alt)
		n.right.fmt(b, !square, alt)
	case nodeLambda:
		b.WriteByte('\\')
		b.WriteString(n.name)
		b.WriteByte('.')
		n.left.fmt(b, !square, alt)
	case nodeNeg:
		b.WriteByte('-')
		n.left.fmt(b, !square, alt)
	case nodeNop:
		b.WriteByte('+')
		n.left.fmt(b, !square, alt)
	case nodeAdd, nodeSub, nodeMul, nodeDiv, nodePow, nodeConvert:
		n.left.fmt(b, !square, alt)
		b.WriteString(n.kind.op(alt))
		n.right.fmt(b, !square, alt)
	default:
		panic("calc: invalid node kind " + n.kind.String() + " after writing " + b.String())
	}
}

// op returns the binary operator for a node kind with surrounding spaces.
func (k nodeKind) op(alt bool) string {
	switch k {
	case nodeAdd:
		return " + "
	case nodeSub:
		return " - "
	case nodeMul:
		if alt {
			return " × "
		}
		return " * "
	case nodeDiv:
		if alt {
			return " ÷ "
		}
		return " / "
	case nodePow:
		return "^"
	case nodeConvert:
		return " -> "
	default:
		panic("calc: not a binary operator: " + k.String())
	}
}

// source writes the tree as an expression that parses to the same tree,
// bracketing only compound terms.
func (n *node) source(b *strings.Builder) {
	switch n.kind {
	case nodeNum, nodeName:
		b.WriteString(n.name)
	case nodeValue:
		b.WriteString(valueString(n.val))
	case nodeApply:
		n.left.operand(b)
		b.WriteByte(' ')
		n.right.operand(b)
	case nodeCall:
		n.left.operand(b)
		b.WriteByte('(')
		n.right.source(b)
		b.WriteByte(')')
	case nodeLambda:
		b.WriteByte('\\')
		b.WriteString(n.name)
		b.WriteByte('.')
		n.left.source(b)
	case nodeAssign:
		b.WriteString(n.name)
		b.WriteString(" = ")
		n.left.source(b)
	case nodeNeg:
		b.WriteByte('-')
		n.left.operand(b)
	case nodeNop:
		b.WriteByte('+')
		n.left.operand(b)
	case nodeAdd, nodeSub, nodeMul, nodeDiv, nodePow, nodeConvert:
		n.left.operand(b)
		b.WriteString(n.kind.op(false))
		n.right.operand(b)
	default:
		panic("calc: invalid node kind " + n.kind.String())
	}
}

// operand writes n as the operand of another node.
func (n *node) operand(b *strings.Builder) {
	switch n.kind {
	case nodeNum, nodeName, nodeCall:
		n.source(b)
	case nodeValue:
		if _, ok := n.val.(*Closure); !ok {
			n.source(b)
			return
		}
		fallthrough
	default:
		b.WriteByte('(')
		n.source(b)
		b.WriteByte(')')
	}
}
