package category

import (
	"time"

	"finanzas/internal/transaction"
)

// DefaultIcon is used when a category is created without one.
const DefaultIcon = "📁"

// Category is a named, typed tag attachable to transactions. Its type is
// fixed at creation; only listing and creation are exposed.
type Category struct {
	ID        int64
	Name      string
	Type      transaction.Type
	Icon      string
	CreatedAt time.Time
}
