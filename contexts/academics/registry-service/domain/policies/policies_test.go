package policies

import (
	"testing"

	"github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/registry-service/domain/entities"
)

func TestDefaultRulesetAdminOnly(t *testing.T) {
	rules := Default()
	aggregates := []Aggregate{
		AggregateUser,
		AggregateCourse,
		AggregateClass,
		AggregateEnrollment,
		AggregateRoom,
	}

	for _, aggregate := range aggregates {
		if !rules.CanCreate(aggregate, entities.RoleAdmin) {
			t.Fatalf("admin should create %s", aggregate)
		}
		if !rules.CanEdit(aggregate, entities.RoleAdmin) {
			t.Fatalf("admin should edit %s", aggregate)
		}
		if !rules.CanDelete(aggregate, entities.RoleAdmin) {
			t.Fatalf("admin should delete %s", aggregate)
		}

		if rules.CanCreate(aggregate, entities.RoleUser) {
			t.Fatalf("plain user should not create %s", aggregate)
		}
		if rules.CanEdit(aggregate, entities.RoleUser) {
			t.Fatalf("plain user should not edit %s", aggregate)
		}
		if rules.CanDelete(aggregate, entities.RoleUser) {
			t.Fatalf("plain user should not delete %s", aggregate)
		}
	}
}

func TestUnknownAggregateDenies(t *testing.T) {
	rules := Default()
	if rules.CanCreate(Aggregate("grade"), entities.RoleAdmin) {
		t.Fatal("unknown aggregate kind must deny even for admin")
	}
	if rules.CanDelete(Aggregate(""), entities.RoleAdmin) {
		t.Fatal("empty aggregate kind must deny")
	}
}

func TestNilPredicateDenies(t *testing.T) {
	rules := Ruleset{
		AggregateRoom: {Create: func(entities.Role) bool { return true }},
	}
	if !rules.CanCreate(AggregateRoom, entities.RoleUser) {
		t.Fatal("explicit create predicate should apply")
	}
	if rules.CanEdit(AggregateRoom, entities.RoleAdmin) {
		t.Fatal("missing edit predicate must deny")
	}
}
