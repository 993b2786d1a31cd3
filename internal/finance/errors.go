package finance

import "errors"

// Category mutation failures are reported synchronously to the caller so the
// UI layer can react immediately.
var (
	ErrDuplicateCategory   = errors.New("duplicate or empty category name")
	ErrCategoryInUse       = errors.New("category is referenced by a transaction")
	ErrInvalidCategoryName = errors.New("invalid category name")
)
