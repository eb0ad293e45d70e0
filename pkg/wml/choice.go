package wml

import (
	"fmt"

	"github.com/samber/lo"
)

// A ChoiceGroup binds each admissible tag of one schema choice to its
// decoder. Membership testing and dispatch share the same table, so the
// two can never disagree.
type ChoiceGroup[T any] struct {
	name     string
	tags     []string
	decoders map[string]func(*Node) (T, error)
}

// NewChoiceGroup creates an empty choice group with the given name. The
// name identifies the group in membership errors.
func NewChoiceGroup[T any](name string) *ChoiceGroup[T] {
	return &ChoiceGroup[T]{
		name:     name,
		decoders: make(map[string]func(*Node) (T, error)),
	}
}

// Bind registers a decoder for one tag and returns the group for chaining.
// Rebinding a tag replaces its decoder.
func (g *ChoiceGroup[T]) Bind(tag string, decode func(*Node) (T, error)) *ChoiceGroup[T] {
	if _, exists := g.decoders[tag]; !exists {
		g.tags = append(g.tags, tag)
	}
	g.decoders[tag] = decode
	return g
}

// Name returns the group's name.
func (g *ChoiceGroup[T]) Name() string {
	return g.name
}

// Tags returns the admissible tags in registration order.
func (g *ChoiceGroup[T]) Tags() []string {
	return append([]string(nil), g.tags...)
}

// Contains reports whether the tag belongs to this group.
func (g *ChoiceGroup[T]) Contains(tag string) bool {
	_, ok := g.decoders[tag]
	return ok
}

// Decode dispatches the node to the decoder bound to its tag. A foreign
// tag fails with a group membership error; any error from the bound
// decoder propagates unchanged.
func (g *ChoiceGroup[T]) Decode(n *Node) (T, error) {
	decode, ok := g.decoders[n.Tag()]
	if !ok {
		var zero T
		return zero, NewNotGroupMemberError(n.Tag(), g.name)
	}
	return decode(n)
}

// A GroupSet composes several simultaneously applicable choice groups over
// one ordered child list. Groups are tested in the fixed order given at
// construction: most specific content group first, generic fallback last.
type GroupSet[T any] struct {
	name   string
	groups []*ChoiceGroup[T]
}

// NewGroupSet builds a group set after verifying that no tag is claimed by
// two member groups; overlapping groups would make classification depend
// on priority order for legal tags, which the schema forbids.
func NewGroupSet[T any](name string, groups ...*ChoiceGroup[T]) (*GroupSet[T], error) {
	for i, a := range groups {
		for _, b := range groups[i+1:] {
			if shared := lo.Intersect(a.tags, b.tags); len(shared) > 0 {
				return nil, fmt.Errorf("group set '%s': tag '%s' claimed by both '%s' and '%s'",
					name, shared[0], a.name, b.name)
			}
		}
	}
	return &GroupSet[T]{name: name, groups: groups}, nil
}

// MustGroupSet is NewGroupSet for package-level sets whose composition is
// fixed at compile time.
func MustGroupSet[T any](name string, groups ...*ChoiceGroup[T]) *GroupSet[T] {
	set, err := NewGroupSet(name, groups...)
	if err != nil {
		panic(err)
	}
	return set
}

// Classify returns the member group containing the tag, or nil.
func (s *GroupSet[T]) Classify(tag string) *ChoiceGroup[T] {
	for _, g := range s.groups {
		if g.Contains(tag) {
			return g
		}
	}
	return nil
}

// Contains reports whether any member group claims the tag.
func (s *GroupSet[T]) Contains(tag string) bool {
	return s.Classify(tag) != nil
}

// DecodeChild dispatches one child node through the first claiming group.
// A tag claimed by no group fails with a membership error naming the set.
// Every nested decode re-enters here, so this is also where the configured
// decode depth bound is enforced.
func (s *GroupSet[T]) DecodeChild(n *Node) (T, error) {
	g := s.Classify(n.Tag())
	if g == nil {
		var zero T
		return zero, NewNotGroupMemberError(n.Tag(), s.name)
	}
	if max := GetGlobalConfig().MaxDecodeDepth; n.Depth() > max {
		var zero T
		return zero, NewDepthLimitError(n.Tag(), n.Depth(), max)
	}
	GetLogger().DebugNode(n.Tag(), g.Name())
	return g.Decode(n)
}

// DecodeChildren dispatches every element child of the parent in document
// order, skipping tags in the skip list (property containers handled by
// the caller). The first unclaimed tag aborts; no partial result escapes.
func (s *GroupSet[T]) DecodeChildren(parent *Node, skip ...string) ([]T, error) {
	var out []T
	for _, child := range parent.Children() {
		if lo.Contains(skip, child.Tag()) {
			continue
		}
		v, err := s.DecodeChild(child)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
