package properties

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

// Action tells what Apply decided to do with the property set.
type Action int

const (
	// ActionNotFound means the property does not exist and force was not requested.
	// Nothing is written.
	ActionNotFound Action = iota
	ActionAdd
	ActionDelete
	ActionUpdate
)

func (a Action) String() string {
	switch a {
	case ActionNotFound:
		return "not-found"
	case ActionAdd:
		return "add"
	case ActionDelete:
		return "delete"
	case ActionUpdate:
		return "update"
	default:
		return fmt.Sprintf("Action(%d)", int(a))
	}
}

// Mutation describes a change of a single property.
type Mutation struct {
	Name   string
	Value  string
	Force  bool
	Delete bool
}

// Result is the outcome of applying a Mutation to a property list.
type Result struct {
	Action Action
	// Properties is the full list to write back. For ActionNotFound it is the
	// unchanged input.
	Properties []Property
	// Existing lists the names present before the mutation, in store order.
	Existing []string
}

// Mutates reports whether the result has to be written back to the store.
func (r Result) Mutates() bool {
	return r.Action != ActionNotFound
}

// Apply computes the property list after applying m to current. The lookup is
// an exact, case-sensitive match on the name. The delete flag is only
// consulted when the property exists, so force wins when both are set for a
// missing property. current is never modified.
func Apply(current []Property, m Mutation) Result {
	res := Result{
		Existing: lo.Map(current, func(p Property, _ int) string { return p.Name }),
	}

	idx := slices.IndexFunc(current, func(p Property) bool {
		return p.Name == m.Name
	})

	switch {
	case idx < 0 && !m.Force:
		res.Action = ActionNotFound
		res.Properties = slices.Clone(current)
	case idx < 0:
		res.Action = ActionAdd
		res.Properties = append(slices.Clone(current), Property{Name: m.Name, Value: m.Value})
	case m.Delete:
		res.Action = ActionDelete
		res.Properties = lo.Filter(current, func(p Property, _ int) bool {
			return p.Name != m.Name
		})
	default:
		res.Action = ActionUpdate
		res.Properties = slices.Clone(current)
		res.Properties[idx].Value = m.Value
	}
	return res
}

// Update reads the property set of project, applies m and writes the result
// back exactly once with the state token of the read. Nothing is written when
// the property is missing and m.Force is not set.
func Update(ctx context.Context, store Store, project string, m Mutation) (Result, error) {
	set, err := store.GetProperties(ctx, project)
	if err != nil {
		return Result{}, fmt.Errorf("failed to get properties of project %q: %w", project, err)
	}
	if set == nil {
		set = &Set{}
	}

	res := Apply(set.Properties, m)
	zap.L().Debug("Applied property mutation",
		zap.String("project", project),
		zap.String("property", m.Name),
		zap.Stringer("action", res.Action))
	if !res.Mutates() {
		return res, nil
	}

	if err := store.SetProperties(ctx, project, set.State, res.Properties); err != nil {
		return res, fmt.Errorf("failed to update properties of project %q: %w", project, err)
	}
	return res, nil
}

// NotFoundMessage renders the report for a property that does not exist.
func NotFoundMessage(name string, existing []string) string {
	quoted := lo.Map(existing, func(n string, _ int) string {
		return "'" + n + "'"
	})
	return fmt.Sprintf("Property '%s' was not found. Use the --force option in order to create it. Only the following properties exist: %s",
		name, strings.Join(quoted, ", "))
}
