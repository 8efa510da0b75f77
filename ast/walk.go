// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package ast

import "fmt"

// A Handler handles events from walking the structure of a value.  If a
// method reports an error, the walk stops and that error is returned to the
// caller. Walk ensures that objects, lists, and entries are correctly
// balanced.
type Handler interface {
	// Begin an object with the given container.
	BeginObject(c *Container) error

	// End the most-recently-begun object.
	EndObject(c *Container) error

	// Begin a list with the given container.
	BeginList(c *Container) error

	// End the most-recently-begun list.
	EndList(c *Container) error

	// Begin an entry of the innermost container. The value of the entry is
	// reported by the events between BeginEntry and the matching EndEntry.
	BeginEntry(n *Node) error

	// End the current entry.
	EndEntry(n *Node) error

	// Report a Null, Bool, Number, or String value.
	Value(v Value) error
}

// Walk traverses the structure of v in order, delivering events to h.
func Walk(v Value, h Handler) error {
	switch t := v.(type) {
	case Object:
		if err := h.BeginObject(t.Container); err != nil {
			return err
		}
		if err := walkEntries(t.Container, h); err != nil {
			return err
		}
		return h.EndObject(t.Container)

	case List:
		if err := h.BeginList(t.Container); err != nil {
			return err
		}
		if err := walkEntries(t.Container, h); err != nil {
			return err
		}
		return h.EndList(t.Container)

	case Null, Bool, Number, String:
		return h.Value(v)

	default:
		return fmt.Errorf("cannot walk value of type %T", v)
	}
}

func walkEntries(c *Container, h Handler) error {
	for n := range c.Entries() {
		if err := h.BeginEntry(n); err != nil {
			return err
		}
		if err := Walk(n.value, h); err != nil {
			return err
		}
		if err := h.EndEntry(n); err != nil {
			return err
		}
	}
	return nil
}

// A KindCounter is a Handler that counts the values it sees, by kind.
// Objects and lists are counted along with scalars, including the value at
// the root of the walk.
type KindCounter map[Kind]int

func (k KindCounter) BeginObject(*Container) error { k[KindObject]++; return nil }
func (KindCounter) EndObject(*Container) error { return nil }
func (k KindCounter) BeginList(*Container) error { k[KindList]++; return nil }
func (KindCounter) EndList(*Container) error { return nil }
func (KindCounter) BeginEntry(*Node) error { return nil }
func (KindCounter) EndEntry(*Node) error { return nil }
func (k KindCounter) Value(v Value) error { k[v.Kind()]++; return nil }
