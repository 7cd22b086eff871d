// ABOUTME: Topic domain model represents a watched subject the pipeline scores against
// ABOUTME: Topics are owned by the caller and passed in as an immutable snapshot per run

package domain

import "strings"

// Topic is a watched subject. Names are stored case-sensitively but
// compared case-insensitively.
type Topic struct {
	// Name is the unique topic name
	Name string

	// Active indicates whether the topic is currently watched
	Active bool
}

// Matches reports whether the given name refers to this topic.
func (t Topic) Matches(name string) bool {
	return strings.EqualFold(t.Name, name)
}

// ResolveTopic finds the topic referenced by name within a topic snapshot.
// Returns the zero Topic and false when the name is empty or unknown.
func ResolveTopic(topics []Topic, name string) (Topic, bool) {
	if name == "" {
		return Topic{}, false
	}
	for _, t := range topics {
		if t.Matches(name) {
			return t, true
		}
	}
	return Topic{}, false
}
