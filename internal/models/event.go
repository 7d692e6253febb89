package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type EventType string

const (
	EventTypeWedding     EventType = "wedding"
	EventTypeBirthday    EventType = "birthday"
	EventTypeCorporate   EventType = "corporate"
	EventTypeAnniversary EventType = "anniversary"
	EventTypeOther       EventType = "other"
)

func (t EventType) Valid() bool {
	switch t {
	case EventTypeWedding, EventTypeBirthday, EventTypeCorporate, EventTypeAnniversary, EventTypeOther:
		return true
	}
	return false
}

type Event struct {
	ID             uint            `gorm:"primaryKey" json:"id"`
	Name           string          `gorm:"not null" json:"name"`
	Description    string          `gorm:"type:text" json:"description"`
	EventType      EventType       `gorm:"type:varchar(20);not null;default:'other'" json:"event_type"`
	ImageURL       string          `gorm:"type:text" json:"image_url,omitempty"`
	Capacity       int             `gorm:"not null" json:"capacity"`
	PricePerPerson decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price_per_person"`
	Available      bool            `gorm:"not null;default:true" json:"available"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}
