package model

import "github.com/google/uuid"

type Role string

const (
	RoleAdmin      Role = "ADMIN"
	RoleFleetOwner Role = "FLEET_OWNER"
	RoleDriver     Role = "DRIVER"
)

// Principal is the authenticated caller extracted from the access token.
type Principal struct {
	UserID   uuid.UUID
	Role     Role
	DriverID *uuid.UUID
}

func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

func (p Principal) IsFleetOwner() bool {
	return p.Role == RoleFleetOwner
}

func (p Principal) IsDriver() bool {
	return p.Role == RoleDriver
}
