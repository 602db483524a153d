package models

type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

type User struct {
	ID      string `json:"_id" validate:"required"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Role    Role   `json:"role"`
	Address string `json:"address,omitempty"`
	City    string `json:"city,omitempty"`
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

type LoginData struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UserUpdate struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone"`
	Role  Role   `json:"role" validate:"oneof=user admin"`
}
