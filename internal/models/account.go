package models

// Account identifies a front-desk operator. Usernames are unique
// case-insensitively; the operator name is stamped onto booking audit fields.
type Account struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
	IsActive bool   `json:"isActive"`
}

func (a *Account) IsOwner() bool {
	return a.Role == RoleOwner
}
