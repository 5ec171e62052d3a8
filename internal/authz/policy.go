// Package authz evaluates the flat two-role access policy. The claimed role
// arrives from the transport layer and is trusted as-is; verifying identity
// is the job of an authentication layer this service deliberately does not
// have.
package authz

import (
	"course-enrollment-service/internal/domain/user"
	errs "course-enrollment-service/pkg/errors"
)

// Requirement is the role class an operation demands.
type Requirement string

const (
	// Public operations need no role at all.
	Public Requirement = "none"
	// AdminOnly operations require the admin role.
	AdminOnly Requirement = "admin"
	// StudentOnly operations require the student role.
	StudentOnly Requirement = "student"
)

// Require returns nil when the claimed role satisfies the requirement, and a
// typed unauthorized error naming the missing role otherwise. Unrecognized
// claimed roles fail every non-public requirement.
func Require(claimed user.Role, required Requirement) error {
	switch required {
	case Public:
		return nil
	case AdminOnly:
		if claimed != user.RoleAdmin {
			return errs.NewUnauthorizedError(string(user.RoleAdmin), "must be an Admin")
		}
		return nil
	case StudentOnly:
		if claimed != user.RoleStudent {
			return errs.NewUnauthorizedError(string(user.RoleStudent), "must be a Student")
		}
		return nil
	default:
		return errs.NewUnauthorizedError(string(required), "")
	}
}
