package application

import "github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/scheduling-service/domain/entities"

// Actor is the already-authenticated caller identity every command carries.
// Contextual class roles are not part of it; they are resolved per operation
// against the roster directory so the policy call stays explicit.
type Actor struct {
	UserID int64
	Role   entities.Role
}
