// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"fmt"
	"iter"
	"math"
	"strconv"

	"github.com/creachadair/wjson"
)

// A Container is an ordered sequence of entries, used for both objects and
// lists. A new container holds a single unfilled placeholder node, which
// becomes the first entry when one is added; the head node of a container
// therefore never changes.
//
// A container exclusively owns its entries, and through them any nested
// containers. It also tracks its last entry, so adding an entry takes
// constant time.
type Container struct {
	head, tail *Node
	n          int
	owner      *Node // the node whose payload is this container, or nil
}

// NewContainer constructs a new empty container.
func NewContainer() *Container {
	c := new(Container)
	c.head = &Node{parent: c}
	c.tail = c.head
	return c
}

// Head returns the first node of c. If c is empty, this is its unfilled
// placeholder node.
func (c *Container) Head() *Node { return c.head }

// Len reports the number of entries in c.
func (c *Container) Len() int { return c.n }

// IsEmpty reports whether c has no entries.
func (c *Container) IsEmpty() bool { return c.n == 0 }

// Owner returns the node whose payload is c, or nil if c is not nested in
// another container.
func (c *Container) Owner() *Node { return c.owner }

// Entries returns a sequence of the entries of c in order.
func (c *Container) Entries() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		if c.n == 0 {
			return
		}
		for n := c.head; n != nil; n = n.next {
			if !yield(n) {
				return
			}
		}
	}
}

// Find returns the first entry of c with the given key, or nil.
func (c *Container) Find(key string) *Node {
	for n := range c.Entries() {
		if n.key == key {
			return n
		}
	}
	return nil
}

// Index returns the entry of c at offset i, or nil if i is out of range.
// Negative offsets count backward from the end (-1 is last).
func (c *Container) Index(i int) *Node {
	if i < 0 {
		i += c.n
	}
	if i < 0 || i >= c.n {
		return nil
	}
	n := c.head
	for ; i > 0; i-- {
		n = n.next
	}
	return n
}

// Append adds an entry with the given key and value to the end of c.  If v
// owns a container, ownership of that container passes to the new entry.
//
// Append is atomic: if it reports an error, c is unchanged.
func (c *Container) Append(key string, v Value) error {
	if err := c.checkAppend(v); err != nil {
		return err
	}
	c.link(key, v)
	return nil
}

// Push adds an entry with value v to the end of c. The key of the entry is
// the decimal representation of its zero-based position.
func (c *Container) Push(v Value) error {
	if err := c.checkAppend(v); err != nil {
		return err
	}
	c.link(strconv.Itoa(c.n), v)
	return nil
}

// AppendString adds a string member to c.
func (c *Container) AppendString(key, s string) error { return c.Append(key, String(s)) }

// AppendNumber adds a number member to c.
func (c *Container) AppendNumber(key string, z float64) error { return c.Append(key, Number(z)) }

// AppendBool adds a Boolean member to c.
func (c *Container) AppendBool(key string, ok bool) error { return c.Append(key, Bool(ok)) }

// AppendNull adds a null member to c.
func (c *Container) AppendNull(key string) error { return c.Append(key, Null{}) }

// AppendObject adds an object member to c, taking ownership of obj.
func (c *Container) AppendObject(key string, obj *Container) error {
	return c.Append(key, Object{obj})
}

// AppendList adds a list member to c, taking ownership of lst.
func (c *Container) AppendList(key string, lst *Container) error {
	return c.Append(key, List{lst})
}

// PushString adds a string element to c.
func (c *Container) PushString(s string) error { return c.Push(String(s)) }

// PushNumber adds a number element to c.
func (c *Container) PushNumber(z float64) error { return c.Push(Number(z)) }

// PushBool adds a Boolean element to c.
func (c *Container) PushBool(ok bool) error { return c.Push(Bool(ok)) }

// PushNull adds a null element to c.
func (c *Container) PushNull() error { return c.Push(Null{}) }

// PushObject adds an object element to c, taking ownership of obj.
func (c *Container) PushObject(obj *Container) error { return c.Push(Object{obj}) }

// PushList adds a list element to c, taking ownership of lst.
func (c *Container) PushList(lst *Container) error { return c.Push(List{lst}) }

// checkAppend reports whether v may be added to c.
func (c *Container) checkAppend(v Value) error {
	if c == nil {
		return wjson.Errorf(wjson.InvalidChild, -1, "append to nil container")
	} else if v == nil {
		return wjson.Errorf(wjson.InvalidChild, -1, "nil value")
	}
	switch t := v.(type) {
	case Number:
		if z := float64(t); math.IsInf(z, 0) || math.IsNaN(z) {
			return wjson.Errorf(wjson.InvalidChild, -1, "non-finite number %v", z)
		}
		return nil
	case Object, List:
	default:
		return nil
	}
	sub := child(v)
	if sub == nil {
		return wjson.Errorf(wjson.InvalidChild, -1, "%v with nil container", v.Kind())
	} else if sub.owner != nil {
		return wjson.Errorf(wjson.InvalidChild, -1, "%v is already owned by %v", v.Kind(), sub.owner)
	}
	for p := c; p != nil; p = p.enclosing() {
		if p == sub {
			return wjson.Errorf(wjson.InvalidChild, -1, "%v would contain itself", v.Kind())
		}
	}
	return nil
}

// link adds a fully-validated entry to the end of c.
func (c *Container) link(key string, v Value) {
	if c.n == 0 {
		// Fill the placeholder in place.
		c.head.key, c.head.value = key, v
	} else {
		n := &Node{key: key, value: v, parent: c, prev: c.tail}
		c.tail.next = n
		c.tail = n
	}
	if sub := child(v); sub != nil {
		sub.owner = c.tail
	}
	c.n++
}

// enclosing returns the container that owns c, or nil.
func (c *Container) enclosing() *Container {
	if c.owner == nil {
		return nil
	}
	return c.owner.parent
}

// Release discards all the entries of c, recursively releasing any nested
// containers, and leaves c empty. The head node of c is retained as its
// placeholder. If c is nested in another container, it remains so.
func (c *Container) Release() {
	if c == nil {
		return
	}
	n := c.head
	for n != nil {
		next := n.next
		if sub := child(n.value); sub != nil {
			sub.Release()
			sub.owner = nil
		}
		n.key, n.value = "", nil
		n.prev, n.next = nil, nil
		if n != c.head {
			n.parent = nil
		}
		n = next
	}
	c.tail = c.head
	c.n = 0
}

func (c *Container) String() string { return fmt.Sprintf("Container(len=%d)", c.n) }
