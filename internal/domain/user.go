package domain

const (
	RoleGuest    = "GUEST"
	RoleCustomer = "CUSTOMER"
	RoleStore    = "STORE"
)

type User struct {
	UserID int    `db:"user_id" json:"user_id"`
	Name   string `db:"name" json:"name"`
	Email  string `db:"email" json:"email"`
	Phone  string `db:"phone" json:"phone"`
	Hash   string `db:"password_hash" json:"-"`
	Role   string `db:"role" json:"role"`
}
