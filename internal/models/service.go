package models

// Service is a published offering by a provider. Price is stored in
// integer cents; rounding is the caller's responsibility.
type Service struct {
	BaseModel
	Title       string `gorm:"not null" json:"title"`
	Description string `gorm:"not null" json:"description"`
	PriceCents  int64  `gorm:"not null" json:"priceCents"`
	ProviderID  string `gorm:"not null;index" json:"providerId"`
	Available   bool   `gorm:"default:true" json:"available"`

	Provider *User `gorm:"foreignKey:ProviderID" json:"provider,omitempty"`
	Jobs     []Job `gorm:"foreignKey:ServiceID" json:"-"`
}

// PublicProvider is the trimmed provider shape annotated on catalog
// listings.
type PublicProvider struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (u *User) Public() PublicProvider {
	return PublicProvider{ID: u.ID, Name: u.Name}
}
