package entities

// OperatorRole distinguishes admins from field locksmiths.
type OperatorRole string

const (
	OperatorRoleAdmin     OperatorRole = "admin"
	OperatorRoleOwner     OperatorRole = "owner"
	OperatorRoleLocksmith OperatorRole = "locksmith"
)

// Operator is a user allowed to log into the service.
//
// Storage model (DynamoDB):
//   - PK: email
type Operator struct {
	Email        string       `json:"email"`
	PasswordHash string       `json:"-"`
	FirstName    string       `json:"first_name,omitempty"`
	LastName     string       `json:"last_name,omitempty"`
	Role         OperatorRole `json:"role"`
}
