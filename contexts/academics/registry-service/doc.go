// Package registry owns the academic catalog: accounts, courses, classes,
// enrollments and rooms. Mutations run a fixed pipeline of policy check,
// invariant check, then a single repository write.
package registry
