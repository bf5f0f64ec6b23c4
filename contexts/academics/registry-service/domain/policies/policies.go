package policies

import "github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/registry-service/domain/entities"

// Aggregate names the protected resource kind a predicate applies to.
type Aggregate string

const (
	AggregateUser       Aggregate = "user"
	AggregateCourse     Aggregate = "course"
	AggregateClass      Aggregate = "class"
	AggregateEnrollment Aggregate = "enrollment"
	AggregateRoom       Aggregate = "room"
)

// Rule holds the three mutation predicates for one aggregate kind. Each
// predicate is a pure function of the caller's global role.
type Rule struct {
	Create func(entities.Role) bool
	Edit   func(entities.Role) bool
	Delete func(entities.Role) bool
}

// Ruleset maps aggregate kinds to their mutation rules. Unknown kinds deny.
type Ruleset map[Aggregate]Rule

func adminOnly(role entities.Role) bool {
	return role == entities.RoleAdmin
}

// Default returns the current rule table: every registry aggregate is
// admin-only for create/edit/delete.
func Default() Ruleset {
	rule := Rule{Create: adminOnly, Edit: adminOnly, Delete: adminOnly}
	return Ruleset{
		AggregateUser:       rule,
		AggregateCourse:     rule,
		AggregateClass:      rule,
		AggregateEnrollment: rule,
		AggregateRoom:       rule,
	}
}

// CanCreate evaluates the create predicate for kind.
func (rs Ruleset) CanCreate(kind Aggregate, role entities.Role) bool {
	rule, ok := rs[kind]
	return ok && rule.Create != nil && rule.Create(role)
}

// CanEdit evaluates the edit predicate for kind.
func (rs Ruleset) CanEdit(kind Aggregate, role entities.Role) bool {
	rule, ok := rs[kind]
	return ok && rule.Edit != nil && rule.Edit(role)
}

// CanDelete evaluates the delete predicate for kind.
func (rs Ruleset) CanDelete(kind Aggregate, role entities.Role) bool {
	rule, ok := rs[kind]
	return ok && rule.Delete != nil && rule.Delete(role)
}
