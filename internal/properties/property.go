// Package properties holds the team project property model and the rules for
// changing a single property in a property set.
package properties

import (
	"context"

	"github.com/samber/lo"
)

// Property is a named string attribute of a team project.
type Property struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Set is the full property list of a team project together with the state
// token the store handed out when the list was read.
type Set struct {
	// State must be passed back unchanged when the set is written.
	State      string
	Properties []Property
}

// Names returns the property names in store order.
func (s *Set) Names() []string {
	if s == nil {
		return []string{}
	}
	return lo.Map(s.Properties, func(p Property, _ int) string {
		return p.Name
	})
}

// Find returns the index of the property with exactly the given name.
func (s *Set) Find(name string) (int, bool) {
	if s == nil {
		return -1, false
	}
	_, idx, ok := lo.FindIndexOf(s.Properties, func(p Property) bool {
		return p.Name == name
	})
	return idx, ok
}

// Store reads and writes the property set of a team project. The store has
// no partial update: SetProperties replaces the whole set, so a property
// missing from props is deleted.
type Store interface {
	GetProperties(ctx context.Context, project string) (*Set, error)
	SetProperties(ctx context.Context, project string, state string, props []Property) error
}
