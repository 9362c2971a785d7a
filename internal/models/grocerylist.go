package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/forkful/mealplanner-backend/internal/units"
)

const (
	GroceryListStatusActive   = "ACTIVE"
	GroceryListStatusInactive = "INACTIVE"

	GroceryListItemStatusActive   = "ACTIVE"
	GroceryListItemStatusInactive = "INACTIVE"
)

type GroceryList struct {
	ID         uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
	DeletedAt  gorm.DeletedAt    `gorm:"index" json:"-"`
	MealPlanID uuid.UUID         `gorm:"type:uuid;not null;index" json:"meal_plan_id"`
	UserID     uuid.UUID         `gorm:"type:uuid;not null;index" json:"user_id"`
	Status     string            `gorm:"size:10;not null;default:'ACTIVE'" json:"status"`
	Items      []GroceryListItem `gorm:"constraint:OnDelete:CASCADE" json:"items"`
}

func (l *GroceryList) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// GroceryListItem is one aggregated line of a grocery list. Kelevens is
// the summed base quantity; the display amount and unit are derived on
// read, never stored. An INACTIVE item has been checked off.
type GroceryListItem struct {
	ID            uuid.UUID            `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
	GroceryListID uuid.UUID            `gorm:"type:uuid;not null;index" json:"grocery_list_id"`
	Name          string               `gorm:"size:100;not null" json:"name"`
	Type          units.IngredientType `gorm:"size:10;not null" json:"type"`
	Kelevens      float64              `gorm:"not null" json:"kelevens"`
	Status        string               `gorm:"size:10;not null;default:'ACTIVE'" json:"status"`
}

func (i *GroceryListItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
