package models

import "time"

type User struct {
	BaseModel
	Name          string   `gorm:"not null" json:"name"`
	Email         string   `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash  string   `gorm:"not null" json:"-"`
	Role          UserRole `gorm:"type:varchar(20);not null" json:"role"`
	EmailVerified bool     `gorm:"default:false" json:"emailVerified"`
	AvatarURL     string   `json:"avatarUrl"`

	// Relations
	Services           []Service           `gorm:"foreignKey:ProviderID" json:"-"`
	VerificationTokens []VerificationToken `gorm:"foreignKey:UserID" json:"-"`
}

// VerificationToken is a single-use, time-limited credential proving
// control of an email address.
type VerificationToken struct {
	BaseModel
	Token     string    `gorm:"uniqueIndex;not null" json:"-"`
	UserID    string    `gorm:"not null;index" json:"userId"`
	ExpiresAt time.Time `gorm:"not null" json:"expiresAt"`
	Used      bool      `gorm:"default:false" json:"used"`
}
