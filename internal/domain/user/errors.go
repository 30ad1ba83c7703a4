package user

import "errors"

var (
	ErrUserNotFound            = errors.New("user not found")
	ErrInvalidStatus           = errors.New("invalid user status")
	ErrInvalidStatusTransition = errors.New("invalid user status transition")
	ErrInvalidPermission       = errors.New("invalid permission")
	ErrAdminPrivilegeRequired  = errors.New("admin privilege required")
	ErrPermissionRequired      = errors.New("missing required permission")
)
