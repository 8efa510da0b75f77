// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package ast defines an in-memory document model for JSON-like values, a
// lenient reader that constructs documents from source text, and a writer
// that renders them back to text.
//
// A document is a tree of containers. A Container is an ordered sequence of
// Node entries; it is an object when its entries are added by key (Append)
// and a list when they are added by position (Push). Each node carries a key
// and a Value, one of Null, Bool, Number, String, Object, or List. Object and
// List values own a nested container.
package ast

import (
	"fmt"
	"strconv"
)

// Kind identifies the variant of a node.
type Kind byte

// Constants defining the valid Kind values.
const (
	KindEmpty  Kind = iota // unfilled placeholder
	KindNull               // null
	KindBool               // true or false
	KindNumber             // floating-point number
	KindString             // text
	KindObject             // keyed container
	KindList               // positional container
)

var kindStr = [...]string{
	KindEmpty:  "empty",
	KindNull:   "null",
	KindBool:   "bool",
	KindNumber: "number",
	KindString: "string",
	KindObject: "object",
	KindList:   "list",
}

func (k Kind) String() string {
	if int(k) >= len(kindStr) {
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindStr[k]
}

// A Value is the payload of a node. The concrete type is one of Null, Bool,
// Number, String, Object, or List.
type Value interface {
	Kind() Kind

	isValue()
}

// Null represents the null constant.
type Null struct{}

// Kind satisfies the Value interface.
func (Null) Kind() Kind { return KindNull }

// A Bool is a Boolean constant, true or false.
type Bool bool

// Kind satisfies the Value interface.
func (Bool) Kind() Kind { return KindBool }

// A Number is a floating-point value.
type Number float64

// Kind satisfies the Value interface.
func (Number) Kind() Kind { return KindNumber }

// A String is a text value.
type String string

// Kind satisfies the Value interface.
func (String) Kind() Kind { return KindString }

// An Object is a value holding a container whose entries are keyed.
type Object struct{ *Container }

// Kind satisfies the Value interface.
func (Object) Kind() Kind { return KindObject }

// A List is a value holding a container whose entries are positional.
type List struct{ *Container }

// Kind satisfies the Value interface.
func (List) Kind() Kind { return KindList }

func (Null) isValue()   {}
func (Bool) isValue()   {}
func (Number) isValue() {}
func (String) isValue() {}
func (Object) isValue() {}
func (List) isValue()   {}

// child returns the container owned by v, or nil if v does not own one.
func child(v Value) *Container {
	switch t := v.(type) {
	case Object:
		return t.Container
	case List:
		return t.Container
	}
	return nil
}

// A Node is a single entry of a container.
type Node struct {
	key   string
	value Value // nil while the node is an unfilled placeholder

	parent     *Container // the enclosing container; not an owner
	prev, next *Node
}

// Kind reports the variant of n. A node that has not been filled by an append
// reports KindEmpty.
func (n *Node) Kind() Kind {
	if n.value == nil {
		return KindEmpty
	}
	return n.value.Kind()
}

// Key returns the key of n. For list entries this is the decimal position of
// the entry at the time it was added.
func (n *Node) Key() string { return n.key }

// Value returns the payload of n, or nil if n is an unfilled placeholder.
func (n *Node) Value() Value { return n.value }

// Prev returns the entry before n in its container, or nil.
func (n *Node) Prev() *Node { return n.prev }

// Next returns the entry after n in its container, or nil.
func (n *Node) Next() *Node { return n.next }

// Container returns the container that n belongs to.
func (n *Node) Container() *Container { return n.parent }

func (n *Node) String() string {
	return fmt.Sprintf("Node(key=%q, kind=%v)", n.key, n.Kind())
}

// ToValue converts a string, number, bool, nil, or Value into a Value. It
// panics if v does not have one of those types. A bare *Container is
// rejected, since it does not say whether it is an object or a list.
func ToValue(v any) Value {
	switch t := v.(type) {
	case nil:
		return Null{}
	case Value:
		return t
	case string:
		return String(t)
	case bool:
		return Bool(t)
	case float64:
		return Number(t)
	case float32:
		return Number(t)
	case int:
		return Number(t)
	case int32:
		return Number(t)
	case int64:
		return Number(t)
	case uint:
		return Number(t)
	case uint32:
		return Number(t)
	case uint64:
		return Number(t)
	default:
		panic(fmt.Sprintf("unsupported value type %T", v))
	}
}
