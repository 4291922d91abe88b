package fop

import (
	"fmt"
	"strings"
)

// Directions accepted by ParseOrder.
const (
	ASC  = "asc"
	DESC = "desc"
)

// Order is a sort key plus direction.
type Order struct {
	Field     string
	Direction string
}

// NewOrder constructs an Order.
func NewOrder(field, direction string) Order {
	return Order{Field: field, Direction: direction}
}

// ParseOrder validates field against allowed and direction against asc/desc.
// Empty values fall back to def.
func ParseOrder(field, direction string, allowed []string, def Order) (Order, error) {
	o := def

	if field != "" {
		found := false
		for _, a := range allowed {
			if a == field {
				found = true
				break
			}
		}
		if !found {
			return Order{}, fmt.Errorf("unknown order field %q", field)
		}
		o.Field = field
	}

	if direction != "" {
		switch d := strings.ToLower(direction); d {
		case ASC, DESC:
			o.Direction = d
		default:
			return Order{}, fmt.Errorf("unknown direction %q", direction)
		}
	}

	return o, nil
}
