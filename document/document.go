// Package document provides a tolerant, order-preserving accessor over a
// parsed tree-structured document. Missing or type-mismatched keys are a
// normal case and yield zero values; callers never see an error after the
// initial parse.
//
// The underlying parser is yaml.v3, whose node API keeps mapping keys in
// document order and accepts JSON input, so .advgpt game files load
// unchanged.
package document

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Node is a single value in the document tree. The zero/nil Node behaves
// like an absent value: every accessor returns its zero result.
type Node struct {
	n *yaml.Node
}

// Parse parses raw document bytes. Invalid syntax is the only failure mode.
func Parse(data []byte) (*Node, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}
	return wrap(&root), nil
}

// wrap normalizes a yaml node: unwraps document nodes, follows aliases,
// and turns zero-value nodes (empty input) into nil.
func wrap(n *yaml.Node) *Node {
	for n != nil {
		switch {
		case n.Kind == yaml.DocumentNode && len(n.Content) > 0:
			n = n.Content[0]
		case n.Kind == yaml.AliasNode && n.Alias != nil:
			n = n.Alias
		case n.Kind == 0:
			return nil
		default:
			return &Node{n: n}
		}
	}
	return nil
}

// lookup returns the value node for a mapping key, or nil.
func (d *Node) lookup(key string) *Node {
	if d == nil || d.n.Kind != yaml.MappingNode {
		return nil
	}
	// Content holds key/value pairs in document order.
	for i := 0; i+1 < len(d.n.Content); i += 2 {
		k := d.n.Content[i]
		if k.Kind == yaml.ScalarNode && k.Value == key {
			return wrap(d.n.Content[i+1])
		}
	}
	return nil
}

// Str returns the string value at key, or "" when the key is absent or not
// a string.
func (d *Node) Str(key string) string {
	s, _ := d.lookup(key).AsStr()
	return s
}

// Bool returns the boolean value at key, or false when absent or not a
// boolean.
func (d *Node) Bool(key string) bool {
	b, _ := d.lookup(key).AsBool()
	return b
}

// Obj returns the object value at key, or nil when absent or not an object.
func (d *Node) Obj(key string) *Node {
	v := d.lookup(key)
	if v == nil || v.n.Kind != yaml.MappingNode {
		return nil
	}
	return v
}

// Seq returns the array value at key as a slice of nodes, or nil when
// absent or not an array.
func (d *Node) Seq(key string) []*Node {
	v := d.lookup(key)
	if v == nil || v.n.Kind != yaml.SequenceNode {
		return nil
	}
	out := make([]*Node, 0, len(v.n.Content))
	for _, c := range v.n.Content {
		out = append(out, wrap(c))
	}
	return out
}

// Each calls fn for every key/value pair of an object node, in document
// order. Non-scalar keys are skipped. Calling Each on a non-object is a
// no-op.
func (d *Node) Each(fn func(key string, value *Node)) {
	if d == nil || d.n.Kind != yaml.MappingNode {
		return
	}
	for i := 0; i+1 < len(d.n.Content); i += 2 {
		k := d.n.Content[i]
		if k.Kind != yaml.ScalarNode {
			continue
		}
		fn(k.Value, wrap(d.n.Content[i+1]))
	}
}

// AsStr returns the node's own string value. Only scalar nodes tagged as
// strings qualify; numbers and booleans do not.
func (d *Node) AsStr() (string, bool) {
	if d == nil || d.n.Kind != yaml.ScalarNode || d.n.Tag != "!!str" {
		return "", false
	}
	return d.n.Value, true
}

// AsBool returns the node's own boolean value.
func (d *Node) AsBool() (bool, bool) {
	if d == nil || d.n.Kind != yaml.ScalarNode || d.n.Tag != "!!bool" {
		return false, false
	}
	var b bool
	if err := d.n.Decode(&b); err != nil {
		return false, false
	}
	return b, true
}
