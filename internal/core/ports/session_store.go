package ports

import "github.com/mlakumulu/travel-admin/internal/core/domain"

// SessionStore persists the (token, user) pair between process runs.
//
// Reads never fail: a missing, unreadable, or corrupted entry is reported as
// absent, and a corrupted entry is erased on the way out (soft-heal). Clear
// is best-effort and removes both entries.
type SessionStore interface {
	SetToken(token string) error
	Token() (string, bool)
	SetUser(user *domain.User) error
	User() (*domain.User, bool)
	Clear()
}
