package model

type Role string

const (
	RoleAdmin Role = "admin"
	RoleAgent Role = "agent"
	RoleUser  Role = "user"
)

type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	Role      Role   `json:"role"`
	Phone     string `json:"phone,omitempty"`
	Photo     string `json:"photo,omitempty"`
	IsActive  bool   `json:"isActive"`
	LastLogin string `json:"lastLogin,omitempty"`
	CreatedAt string `json:"createdAt"`
}

func (u *User) GetPublicProfile() map[string]interface{} {
	return map[string]interface{}{
		"id":       u.ID,
		"email":    u.Email,
		"name":     u.Name,
		"role":     u.Role,
		"isActive": u.IsActive,
	}
}
