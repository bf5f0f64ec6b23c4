package application

import "github.com/Luca5Eckert/SyncoApi-sub001/contexts/academics/registry-service/domain/entities"

// Actor is the already-authenticated caller identity every command carries.
// The transport layer resolves it (token claims); use cases only consume it.
type Actor struct {
	UserID int64
	Role   entities.Role
}
