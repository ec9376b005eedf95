package entities

type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

// Caller is the identity the request is performed on behalf of. A guest
// has no UserID and is identified by the phone number used at checkout.
type Caller struct {
	UserID     int64
	Role       Role
	GuestPhone string
}

func (c Caller) IsAdmin() bool {
	return c.Role == RoleAdmin
}

func (c Caller) IsGuest() bool {
	return c.UserID == 0
}

func Guest(phone string) Caller {
	return Caller{GuestPhone: phone}
}
