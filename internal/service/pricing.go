package service

import "github.com/pageza/nubereats/backend/internal/models"

// ItemPrice is the price of one order line: the dish price plus the charge of
// every selected option. Selections naming an unknown option add nothing.
func ItemPrice(dish *models.Dish, selected []models.OrderItemOption) int {
	price := dish.Price
	for _, sel := range selected {
		opt, ok := dish.Options.Option(sel.Name)
		if !ok {
			continue
		}
		price += optionCharge(opt, sel)
	}
	return price
}

// optionCharge is the flat Extra of an option without choices, or the Extra
// of the selected choice. An unknown or missing choice costs nothing.
func optionCharge(opt models.DishOption, sel models.OrderItemOption) int {
	if len(opt.Choices) == 0 {
		return deref(opt.Extra)
	}
	if sel.Choice == nil {
		return 0
	}
	choice, ok := opt.Choice(*sel.Choice)
	if !ok {
		return 0
	}
	return deref(choice.Extra)
}

func deref(i *int) int {
	if i == nil {
		return 0
	}
	return *i
}
