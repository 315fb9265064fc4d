package outcome

import (
	"time"

	"github.com/google/uuid"
)

// Reader is the read-only view of a result: variant checks plus raw access
type Reader[T, E any] interface {
	// IsOk reports whether the result is the success variant
	IsOk() bool
	// IsErr reports whether the result is the failure variant
	IsErr() bool
	// Value returns the success payload (zero value on Err)
	Value() T
	// Err returns the failure payload (zero value on Ok)
	Err() E
	// Unpack returns both payload slots
	Unpack() (T, E)
}

// Tagged exposes the identity metadata stamped at construction
type Tagged interface {
	// Id returns the identity token
	Id() uuid.UUID
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

var (
	_ Reader[int, error] = Result[int, error]{}
	_ Tagged             = Result[int, error]{}
)
