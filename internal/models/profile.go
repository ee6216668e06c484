package models

// UserProfile 管理员资料，密码按原样（明文）保存
type UserProfile struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// DefaultUserProfile 默认资料
func DefaultUserProfile() UserProfile {
	return UserProfile{
		Name:     "John Doe",
		Email:    "john@example.com",
		Phone:    "+1 234 567 8900",
		Password: "password123",
	}
}
