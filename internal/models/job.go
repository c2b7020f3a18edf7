package models

// Job is a client's request for a provider's service, tracked through the
// OPEN/ASSIGNED/DONE/CANCELLED lifecycle. ProviderID is copied from the
// owning service on creation.
type Job struct {
	BaseModel
	ClientID   string    `gorm:"not null;index" json:"clientId"`
	ProviderID string    `gorm:"not null;index" json:"providerId"`
	ServiceID  string    `gorm:"not null;index" json:"serviceId"`
	Notes      string    `json:"notes"`
	Status     JobStatus `gorm:"type:varchar(20);default:'OPEN'" json:"status"`

	Client  *User    `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	Service *Service `gorm:"foreignKey:ServiceID" json:"service,omitempty"`
}
