package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	MealPlanStatusActive   = "ACTIVE"
	MealPlanStatusInactive = "INACTIVE"
)

// MealPlan is a user's working set of meals. A user builds one plan at a
// time; generating its grocery list flips it to INACTIVE.
type MealPlan struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	Name      string         `gorm:"size:100;not null" json:"name"`
	Status    string         `gorm:"size:10;not null;default:'ACTIVE'" json:"status"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Meals     []Meal         `gorm:"constraint:OnDelete:CASCADE" json:"meals"`
}

func (p *MealPlan) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// Meal is one recipe entry in a meal plan, scaled to the serving count
// the user wants, which may differ from the recipe's own.
type Meal struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	MealPlanID uuid.UUID `gorm:"type:uuid;not null;index" json:"meal_plan_id"`
	RecipeID   uuid.UUID `gorm:"type:uuid;not null" json:"recipe_id"`
	Recipe     Recipe    `json:"recipe"`
	Servings   int       `gorm:"not null" json:"servings"`
	UserID     uuid.UUID `gorm:"type:uuid;not null" json:"user_id"`
}

func (m *Meal) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
