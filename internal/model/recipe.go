package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// JSONBStringArray is a custom type for handling string arrays in JSONB
type JSONBStringArray []string

// Value implements the driver.Valuer interface
func (a JSONBStringArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal(a)
	if err != nil {
		return nil, err
	}
	return string(b), nil
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
		return fmt.Errorf("unsupported JSONB value type %T", value)
	}

	return json.Unmarshal(bytes, a)
}

// Recipe is a catalog entry. Nutrient values are expressed for BaseServings.
type Recipe struct {
	ID           uint             `gorm:"primaryKey" json:"id"`
	CreatedAt    time.Time        `json:"-"`
	UpdatedAt    time.Time        `json:"-"`
	Name         string           `gorm:"size:255;not null" json:"name"`
	Description  string           `gorm:"type:text" json:"description"`
	ImageURL     string           `gorm:"size:512" json:"image_url"`
	Tags         JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"tags"`
	Category     string           `gorm:"size:100;index" json:"category"`
	Ingredients  JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"ingredients"`
	Nutrients    Nutrients        `gorm:"embedded" json:"nutrients"`
	PrepTime     int              `json:"prep_time"`
	CookTime     int              `json:"cook_time"`
	Instructions JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"instructions"`
}

// BaseServings is the serving count every stored quantity refers to.
const BaseServings = 4

// TotalTime returns prep plus cook time in minutes.
func (r *Recipe) TotalTime() int {
	return r.PrepTime + r.CookTime
}

// Validate reports whether the recipe can be displayed.
func (r *Recipe) Validate() error {
	var errs []error
	if strings.TrimSpace(r.Name) == "" {
		errs = append(errs, errors.New("name is required"))
	}
	if len(r.Ingredients) == 0 {
		errs = append(errs, errors.New("at least one ingredient is required"))
	}
	if len(r.Instructions) == 0 {
		errs = append(errs, errors.New("at least one instruction is required"))
	}
	if err := r.Nutrients.Validate(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return fmt.Errorf("recipe %d (%q): %w", r.ID, r.Name, errors.Join(errs...))
	}
	return nil
}
