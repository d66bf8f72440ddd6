package access

import (
	"strings"

	"AccelMailBot/internal/domain/errorz"
)

type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

type Service struct {
	admins map[int64]struct{}
}

func New(admins map[int64]struct{}) *Service {
	if admins == nil {
		admins = map[int64]struct{}{}
	}
	return &Service{admins: admins}
}

func (s *Service) IsAdmin(userID int64) bool {
	_, ok := s.admins[userID]
	return ok
}

// Require rejects non-admin callers with ErrForbidden.
func (s *Service) Require(userID int64) error {
	if !s.IsAdmin(userID) {
		return errorz.ErrForbidden
	}
	return nil
}

// ResolveRole picks a role from explicit, stored and ambient hints, in that
// precedence order. Anything other than "admin" resolves to the user role.
func ResolveRole(explicit, stored, ambient string) Role {
	role := strings.ToLower(strings.TrimSpace(explicit))
	if role == "" {
		role = strings.ToLower(strings.TrimSpace(stored))
	}
	if role == "" {
		role = strings.ToLower(strings.TrimSpace(ambient))
	}
	if role == string(RoleAdmin) {
		return RoleAdmin
	}
	return RoleUser
}
