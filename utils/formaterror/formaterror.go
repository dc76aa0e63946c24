package formaterror

import "strings"

// IsUniqueViolation reports whether err is a duplicate-key error from
// the store. Both backends are matched on message text because neither
// gorm driver exposes a typed constraint error at this layer: Postgres
// says "duplicate key value violates unique constraint", SQLite says
// "UNIQUE constraint failed".
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key value") ||
		strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "Duplicate entry")
}
