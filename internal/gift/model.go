package gift

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Status is the lifecycle stage of a gift.
type Status string

const (
	StatusIdea     Status = "IDEA"
	StatusOrdered  Status = "ORDERED"
	StatusReceived Status = "RECEIVED"
	StatusWrapped  Status = "WRAPPED"
	StatusGiven    Status = "GIVEN"
)

func (s Status) Valid() bool {
	switch s {
	case StatusIdea, StatusOrdered, StatusReceived, StatusWrapped, StatusGiven:
		return true
	}
	return false
}

// Person is a gift recipient. Deleting a person cascades to their gifts.
type Person struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	CreatedAt time.Time `gorm:"not null;default:now()" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updatedAt"`

	Gifts []Gift `gorm:"foreignKey:PersonID" json:"gifts,omitempty"`
}

func (p *Person) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// Gift is an item intended for a person. PersonID is nullable: unassigned
// gifts are allowed.
type Gift struct {
	ID          string   `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string   `gorm:"not null" json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Status      Status   `gorm:"type:text;not null;default:'IDEA'" json:"status"`
	URL         *string  `json:"url"`
	Location    *string  `json:"location"`
	Notes       *string  `json:"notes"`
	PersonID    *string  `gorm:"type:uuid;index" json:"personId"`

	CreatedAt time.Time `gorm:"index;not null;default:now()" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updatedAt"`

	Person *Person `gorm:"foreignKey:PersonID" json:"person"`
}

func (g *Gift) BeforeCreate(tx *gorm.DB) error {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	return nil
}

// PersonName returns the owning person's name, or "" when unassigned. It is
// the derived sort key for the list view.
func (g *Gift) PersonName() string {
	if g.Person == nil {
		return ""
	}
	return g.Person.Name
}
