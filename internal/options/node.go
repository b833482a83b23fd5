package options

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrKindMismatch is returned when a value cannot be stored under an
	// option of a different kind.
	ErrKindMismatch = errors.New("option kind mismatch")

	// ErrReparent is returned when a node already has a parent, or would
	// become its own ancestor.
	ErrReparent = errors.New("options node already has a parent")
)

// Node is one level of an options cascade. Lookups consult the node's local
// values first and then defer to the parent, recursively.
//
// A parent is not owned by its children; one default node is typically shared
// by every per-file node of a run and must outlive them.
type Node struct {
	values map[Option]Value
	parent *Node
}

// NewNode returns an empty node with no parent.
func NewNode() *Node {
	return &Node{values: make(map[Option]Value)}
}

// SetParent attaches the parent of n. A parent can be attached once.
func (n *Node) SetParent(parent *Node) error {
	if n.parent != nil {
		return ErrReparent
	}
	for cur := parent; cur != nil; cur = cur.parent {
		if cur == n {
			return fmt.Errorf("%w: cycle", ErrReparent)
		}
	}
	n.parent = parent
	return nil
}

// Parent returns the parent node, or nil.
func (n *Node) Parent() *Node { return n.parent }

// HasParent reports whether n has a parent.
func (n *Node) HasParent() bool { return n.parent != nil }

// Depth returns the number of ancestors of n.
func (n *Node) Depth() int {
	d := 0
	for cur := n.parent; cur != nil; cur = cur.parent {
		d++
	}
	return d
}

// Set stores a local value for o. v may be a string, bool, Resource,
// []string or Value. Single-valued options are overwritten. A string stored
// under a list option is appended; a []string replaces the list.
func (n *Node) Set(o Option, v any) error {
	if !o.Valid() {
		return fmt.Errorf("%w: %s", ErrUnknownOption, o)
	}
	val, err := coerce(o, v, n.values[o])
	if err != nil {
		return err
	}
	n.values[o] = val
	return nil
}

// SetNamed is Set with the option looked up by name.
func (n *Node) SetNamed(name string, value string) error {
	o, err := ParseOption(name)
	if err != nil {
		return err
	}
	return n.Set(o, value)
}

// Unset removes the local value of o, letting lookups fall through to the
// parent again.
func (n *Node) Unset(o Option) {
	delete(n.values, o)
}

func coerce(o Option, v any, current Value) (Value, error) {
	kind := o.Kind()
	mismatch := func() (Value, error) {
		return Value{}, fmt.Errorf("%w: %s is a %s option, got %T", ErrKindMismatch, o, kind, v)
	}

	switch x := v.(type) {
	case Value:
		if x.kind != kind {
			return mismatch()
		}
		if kind == KindList {
			return ListValue(x.list...), nil
		}
		return x, nil
	case string:
		switch kind {
		case KindString:
			return StringValue(x), nil
		case KindResource:
			return ResourceValue(Resource(x)), nil
		case KindBool:
			b, err := strconv.ParseBool(x)
			if err != nil {
				return Value{}, fmt.Errorf("%w: %s: %q is not a boolean", ErrKindMismatch, o, x)
			}
			return BoolValue(b), nil
		case KindList:
			return ListValue(append(current.list, x)...), nil
		}
	case bool:
		if kind == KindBool {
			return BoolValue(x), nil
		}
	case Resource:
		switch kind {
		case KindResource:
			return ResourceValue(x), nil
		case KindString:
			return StringValue(string(x)), nil
		case KindList:
			return ListValue(append(current.list, string(x))...), nil
		}
	case []string:
		if kind == KindList {
			return ListValue(x...), nil
		}
	}
	return mismatch()
}

// Local returns the value stored on n itself, ignoring ancestors.
func (n *Node) Local(o Option) (Value, bool) {
	v, ok := n.values[o]
	return v, ok
}

// resolve walks from n towards the root and returns the first local value
// for o accepted by present.
func (n *Node) resolve(o Option, present func(Value) bool) (Value, bool) {
	for cur := n; cur != nil; cur = cur.parent {
		if v, ok := cur.values[o]; ok && present(v) {
			return v, true
		}
	}
	return Value{}, false
}

// Value returns the effective value of o: the nearest local value on the way
// to the root.
func (n *Node) Value(o Option) (Value, bool) {
	return n.resolve(o, Value.present)
}

// String returns the lexical form of the effective value of o.
func (n *Node) String(o Option) (string, bool) {
	v, ok := n.resolve(o, Value.present)
	if !ok {
		return "", false
	}
	return v.String(), true
}

// HasValue reports whether any level of the cascade holds a value for o.
func (n *Node) HasValue(o Option) bool {
	_, ok := n.resolve(o, Value.present)
	return ok
}

// IsTrue reports whether o is switched on at any level of the cascade. Unlike
// the value accessors this is an OR across levels, not an override: a child
// setting false does not switch off a flag set by an ancestor.
func (n *Node) IsTrue(o Option) bool {
	_, ok := n.resolve(o, Value.Bool)
	return ok
}

// Resource returns the nearest resource-kind value of o.
func (n *Node) Resource(o Option) (Resource, bool) {
	v, ok := n.resolve(o, func(v Value) bool { return v.kind == KindResource })
	if !ok {
		return "", false
	}
	r, _ := v.Resource()
	return r, true
}

// HasResource reports whether a resource-kind value of o exists at any level.
func (n *Node) HasResource(o Option) bool {
	_, ok := n.Resource(o)
	return ok
}

// Values returns the nearest non-empty list for o. Lists are never merged
// across levels.
func (n *Node) Values(o Option) []string {
	v, ok := n.resolve(o, Value.present)
	if !ok {
		return nil
	}
	return v.List()
}

// Setting is one resolved option of a cascade.
type Setting struct {
	Option Option
	Value  Value
	// Depth is the distance from the queried node to the node that holds the
	// value; 0 means local.
	Depth int
}

// Resolved returns the effective value of every option set anywhere in the
// cascade, in option order. Bool options are reported as true when any level
// switches them on.
func (n *Node) Resolved() []Setting {
	var out []Setting
	for _, o := range All() {
		depth := 0
		for cur := n; cur != nil; cur = cur.parent {
			v, ok := cur.values[o]
			if ok && (o.Kind() == KindBool && v.Bool() || o.Kind() != KindBool && v.present()) {
				out = append(out, Setting{Option: o, Value: v, Depth: depth})
				break
			}
			depth++
		}
	}
	return out
}
