package models

// User is an application user keyed by the identity provider's principal id
type User struct {
	UID         string `json:"uid"`
	DisplayName string `json:"displayName"`
	Email       string `json:"email"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	RoleID      int64  `json:"roleId"`
	RoleName    string `json:"roleName,omitempty"`
}
