package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/forkful/mealplanner-backend/internal/units"
)

// JSONBStringArray is a custom type for handling string arrays in JSONB
type JSONBStringArray []string

// Value implements the driver.Valuer interface
func (a JSONBStringArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	return json.Marshal(a)
}

// Scan implements the sql.Scanner interface
func (a *JSONBStringArray) Scan(value interface{}) error {
	if value == nil {
		*a = JSONBStringArray{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, a)
}

type Recipe struct {
	ID          uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
	DeletedAt   gorm.DeletedAt   `gorm:"index" json:"-"`
	Name        string           `gorm:"size:50;not null" json:"name"`
	Description string           `gorm:"type:text" json:"description"`
	PrepTime    string           `gorm:"size:50" json:"prep_time"`
	CookTime    string           `gorm:"size:50" json:"cook_time"`
	Servings    int              `gorm:"not null" json:"servings"`
	Steps       JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"steps"`
	Notes       string           `gorm:"size:500" json:"notes"`
	ImageURL    string           `gorm:"size:255" json:"image_url"`
	IsPublic    bool             `gorm:"not null;default:false" json:"is_public"`
	UserID      uuid.UUID        `gorm:"type:uuid;not null;index" json:"user_id"`
	Ingredients []Ingredient     `gorm:"constraint:OnDelete:CASCADE" json:"ingredients"`
}

func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// Ingredient is one line of a recipe's ingredient list. Kelevens is the
// unit-converted quantity (amount times the unit's keleven factor),
// computed when the recipe is saved so grocery aggregation never sees an
// unvalidated unit.
type Ingredient struct {
	ID        uuid.UUID            `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time            `json:"created_at"`
	UpdatedAt time.Time            `json:"updated_at"`
	RecipeID  uuid.UUID            `gorm:"type:uuid;not null;index" json:"recipe_id"`
	Name      string               `gorm:"size:100;not null" json:"name"`
	Amount    float64              `gorm:"not null" json:"amount"`
	Type      units.IngredientType `gorm:"size:10;not null" json:"type"`
	Unit      units.Name           `gorm:"size:20" json:"unit,omitempty"`
	Kelevens  float64              `gorm:"not null;default:0" json:"kelevens"`
}

func (i *Ingredient) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
