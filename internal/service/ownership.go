package service

import "github.com/pageza/nubereats/backend/internal/models"

// OwnsRestaurant reports whether principal is the owner of restaurant.
// The Owner role alone is not enough.
func OwnsRestaurant(principal *models.User, restaurant *models.Restaurant) bool {
	return principal != nil && restaurant != nil && restaurant.OwnerID == principal.ID
}

// OwnsDish reports whether principal owns the restaurant the dish belongs to.
func OwnsDish(principal *models.User, dish *models.Dish, restaurant *models.Restaurant) bool {
	return dish != nil && restaurant != nil &&
		dish.RestaurantID == restaurant.ID &&
		OwnsRestaurant(principal, restaurant)
}

func assertOwnsRestaurant(principal *models.User, restaurant *models.Restaurant, deniedMsg string) error {
	if !OwnsRestaurant(principal, restaurant) {
		return forbidden(deniedMsg)
	}
	return nil
}

func assertOwnsDish(principal *models.User, dish *models.Dish, restaurant *models.Restaurant, deniedMsg string) error {
	if !OwnsDish(principal, dish, restaurant) {
		return forbidden(deniedMsg)
	}
	return nil
}

// assertCanCreateAccount gates Admin accounts behind an Admin requester.
// requester is nil for anonymous signups.
func assertCanCreateAccount(requester *models.User, role models.UserRole) error {
	if role != models.RoleAdmin {
		return nil
	}
	if requester == nil || requester.Role != models.RoleAdmin {
		return forbidden(MsgAdminOnly)
	}
	return nil
}
