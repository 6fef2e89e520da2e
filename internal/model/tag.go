package model

import (
	"regexp"
	"slices"
	"strings"
)

// TagConstraints is shown whenever a tag fails validation.
const TagConstraints = "Tags names should be alphanumeric"

var tagRegexp = regexp.MustCompile(`^[a-zA-Z0-9]+$`)

// Tag is a label attached to a person.
type Tag struct {
	name string
}

// NewTag validates s and returns it as a Tag.
func NewTag(s string) (Tag, error) {
	if !IsValidTag(s) {
		return Tag{}, &ConstraintError{Field: "tag", Message: TagConstraints}
	}
	return Tag{name: s}, nil
}

// IsValidTag returns true if s is a valid tag name.
func IsValidTag(s string) bool {
	return tagRegexp.MatchString(s)
}

// Name returns the tag name without decoration.
func (t Tag) Name() string { return t.name }

// String formats the tag the way it is shown to users, e.g. "[friends]".
func (t Tag) String() string { return "[" + t.name + "]" }

// TagSet is an immutable set of tags kept in sorted order. The zero value is
// the empty set. A TagSet never shares its backing array with a caller, so it
// can be passed around by value.
type TagSet struct {
	tags []Tag
}

// NewTagSet returns a set holding the given tags with duplicates removed.
func NewTagSet(tags ...Tag) TagSet {
	if len(tags) == 0 {
		return TagSet{}
	}
	sorted := slices.Clone(tags)
	slices.SortFunc(sorted, func(a, b Tag) int { return strings.Compare(a.name, b.name) })
	return TagSet{tags: slices.Compact(sorted)}
}

// Len returns the number of tags in the set.
func (s TagSet) Len() int { return len(s.tags) }

// IsEmpty returns true if the set holds no tags.
func (s TagSet) IsEmpty() bool { return len(s.tags) == 0 }

// Contains returns true if t is a member of the set.
func (s TagSet) Contains(t Tag) bool {
	_, found := slices.BinarySearchFunc(s.tags, t, func(a, b Tag) int { return strings.Compare(a.name, b.name) })
	return found
}

// Tags returns the members in sorted order. The result is a copy.
func (s TagSet) Tags() []Tag { return slices.Clone(s.tags) }

// Names returns the plain tag names in sorted order.
func (s TagSet) Names() []string {
	names := make([]string, 0, len(s.tags))
	for _, t := range s.tags {
		names = append(names, t.name)
	}
	return names
}

// Equal reports whether both sets hold the same tags.
func (s TagSet) Equal(other TagSet) bool { return slices.Equal(s.tags, other.tags) }

func (s TagSet) String() string {
	var b strings.Builder
	for _, t := range s.tags {
		b.WriteString(t.String())
	}
	return b.String()
}
