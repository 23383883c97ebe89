package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// DishChoice is one mutually exclusive pick inside an option group
type DishChoice struct {
	Name  string `json:"name"`
	Extra *int   `json:"extra,omitempty"`
}

// DishOption is either a group of choices or a flat add-on carrying its own Extra
type DishOption struct {
	Name    string       `json:"name"`
	Choices []DishChoice `json:"choices,omitempty"`
	Extra   *int         `json:"extra,omitempty"`
}

// DishOptions is stored as a JSON column
type DishOptions []DishOption

func (o DishOptions) Value() (driver.Value, error) {
	return marshalJSONColumn(o)
}

func (o *DishOptions) Scan(value interface{}) error {
	return unmarshalJSONColumn(value, o)
}

// Option returns the option called name, if the dish has one
func (o DishOptions) Option(name string) (DishOption, bool) {
	for _, opt := range o {
		if opt.Name == name {
			return opt, true
		}
	}
	return DishOption{}, false
}

// Choice returns the choice called name within the option
func (o DishOption) Choice(name string) (DishChoice, bool) {
	for _, c := range o.Choices {
		if c.Name == name {
			return c, true
		}
	}
	return DishChoice{}, false
}

type Dish struct {
	ID           uint        `gorm:"primarykey" json:"id"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
	Name         string      `gorm:"not null" json:"name"`
	Price        int         `gorm:"not null" json:"price"`
	Photo        string      `json:"photo"`
	Description  string      `gorm:"not null" json:"description"`
	RestaurantID uint        `gorm:"index;not null" json:"restaurant_id"`
	Options      DishOptions `gorm:"type:jsonb;not null;default:'[]'" json:"options"`
}

func marshalJSONColumn(v interface{}) (driver.Value, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	if string(b) == "null" {
		return "[]", nil
	}
	return string(b), nil
}

func unmarshalJSONColumn(value interface{}, dst interface{}) error {
	var bytes []byte
	switch v := value.(type) {
	case nil:
		return nil
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("unsupported JSON column type %T", value)
	}
	if len(bytes) == 0 {
		return nil
	}
	return json.Unmarshal(bytes, dst)
}
