package account

import "stablebook/internal/pkg/errs"

var ErrInvalidRole = errs.New("invalid role")

type Role string

const (
	RoleAdmin Role = "admin"
	RoleStaff Role = "staff"
	RoleUser  Role = "user"
)

func NewRole(value string) (Role, error) {
	switch Role(value) {
	case RoleAdmin, RoleStaff, RoleUser:
		return Role(value), nil
	default:
		return "", ErrInvalidRole
	}
}

func (r Role) String() string {
	return string(r)
}

// CanManage reports whether the role may perform admin-only operations
// (calendar upserts, reward CRUD, point adjustments, booking transitions).
func (r Role) CanManage() bool {
	return r == RoleAdmin || r == RoleStaff
}
