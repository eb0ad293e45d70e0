package wml

// Unbounded marks an occurrence constraint with no upper limit.
const Unbounded = -1

// Occurs is a minOccurs/maxOccurs pair for one kind of repeated child.
type Occurs struct {
	Min int
	Max int
}

// OccursOnce is the default constraint for a required singular child.
var OccursOnce = Occurs{Min: 1, Max: 1}

// OccursOptional admits zero or one occurrence.
var OccursOptional = Occurs{Min: 0, Max: 1}

// OccursAny admits any number of occurrences.
var OccursAny = Occurs{Min: 0, Max: Unbounded}

// Validate checks an actual occurrence count against the constraint.
// The element and child names identify the violation site in the error.
func (o Occurs) Validate(element, child string, actual int) error {
	if actual < o.Min {
		return NewLimitViolationError(element, child, o.Min, o.Max, actual)
	}
	if o.Max != Unbounded && actual > o.Max {
		return NewLimitViolationError(element, child, o.Min, o.Max, actual)
	}
	return nil
}

// RequireChild returns the first child with the given name, failing with a
// missing child error after the full child scan comes up empty.
func RequireChild(n *Node, name string) (*Node, error) {
	child := n.Child(name)
	if child == nil {
		return nil, NewMissingChildError(n.Tag(), name)
	}
	return child, nil
}

// RequireAttr returns the named attribute's value, failing with a missing
// attribute error when it is absent. An empty value is still a value.
func RequireAttr(n *Node, name string) (string, error) {
	value, ok := n.Attr(name)
	if !ok {
		return "", NewMissingAttributeError(n.Tag(), name)
	}
	return value, nil
}

// CollectChildren gathers all children with the given name and validates
// their count in one step, so decoders cannot forget the bounds check.
func CollectChildren(n *Node, name string, occurs Occurs) ([]*Node, error) {
	var matched []*Node
	for _, child := range n.Children() {
		if child.Tag() == name {
			matched = append(matched, child)
		}
	}
	if err := occurs.Validate(n.Tag(), name, len(matched)); err != nil {
		return nil, err
	}
	return matched, nil
}
