package entity

import "github.com/google/uuid"

// Owned is implemented by every entity that belongs to exactly one user.
// The ownership guard in the usecase layer is generic over this interface
// instead of repeating one assertion per table.
type Owned interface {
	Owner() uuid.UUID
}
