package models

// All returns every model managed by the store, in migration order
func All() []interface{} {
	return []interface{}{
		&User{},
		&Verification{},
		&Category{},
		&Restaurant{},
		&Dish{},
		&Order{},
		&OrderItem{},
	}
}
