package request

import (
	"errors"
	"strings"
)

var ErrInvalidCodeRole = errors.New("invalid code role")

const (
	CodeRoleCustomer = "customer"
	CodeRoleProvider = "provider"
)

// JobCodeRequest selects which handshake code to issue: the customer
// role issues the start code, the provider role issues the end code.
type JobCodeRequest struct {
	JobID string `json:"job_id" binding:"required"`
	Role  string `json:"role" binding:"required"`
}

func (r JobCodeRequest) ResolveRole() (string, error) {
	return resolveCodeRole(r.Role)
}

type JobCodeVerifyRequest struct {
	JobID string `json:"job_id" binding:"required"`
	Role  string `json:"role" binding:"required"`
	Code  string `json:"code" binding:"required"`
}

func (r JobCodeVerifyRequest) ResolveRole() (string, error) {
	return resolveCodeRole(r.Role)
}

func resolveCodeRole(role string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(role)) {
	case CodeRoleCustomer:
		return CodeRoleCustomer, nil
	case CodeRoleProvider:
		return CodeRoleProvider, nil
	}
	return "", ErrInvalidCodeRole
}
