package domain

import "time"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"` // Actor ID reference
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"` // Actor ID reference
}

// Role is the role string resolved by the authentication layer.
// Role resolution itself lives outside this subsystem; the engine only
// consumes the resolved value for audit fields and approval gates.
type Role string

const (
	RoleCEO         Role = "ceo"
	RoleAdmin       Role = "admin"
	RoleManager     Role = "manager"
	RoleAgencyChief Role = "agency_chief"
	RoleCashier     Role = "cashier"
)

// IsExecutive reports whether the role carries executive approval authority.
// Payment proposals and large maintenance expenses may only be approved by
// executive roles.
func (r Role) IsExecutive() bool {
	return r == RoleCEO || r == RoleAdmin
}

// Actor identifies who performed an operation, as resolved by the
// authentication middleware.
type Actor struct {
	ActorID string `json:"actorID"`
	Role    Role   `json:"role"`
}
