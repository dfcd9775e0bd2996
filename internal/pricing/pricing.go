// Package pricing maps a seat's row to its pricing band and computes per-seat
// prices from a showtime's base price. It is pure: the same inputs always
// produce the same output, so a booking's recorded amount can be re-verified.
package pricing

// Category is the pricing band derived from a seat's row label.
type Category string

const (
	CategoryVIP     Category = "VIP"
	CategoryBalcony Category = "Balcony"
	CategoryPremium Category = "Premium"
	CategoryNormal  Category = "Normal"
	CategoryFront   Category = "Front"
	CategoryUnknown Category = "Unknown"
)

// CategoryForRow maps a row label to its band. Rows outside A-J fall back to
// Unknown, which prices at the base multiplier.
func CategoryForRow(row string) Category {
	switch row {
	case "A", "B":
		return CategoryVIP
	case "C", "D":
		return CategoryBalcony
	case "E", "F":
		return CategoryPremium
	case "G", "H":
		return CategoryNormal
	case "I", "J":
		return CategoryFront
	}
	return CategoryUnknown
}

// Multiplier returns the price multiplier for a band.
func (c Category) Multiplier() float64 {
	switch c {
	case CategoryVIP:
		return 1.5
	case CategoryBalcony:
		return 1.25
	case CategoryPremium:
		return 1.2
	case CategoryNormal:
		return 1.0
	case CategoryFront:
		return 0.8
	}
	return 1.0
}

// SeatPrice computes the price of a single seat from the showtime's base
// price and the seat's row label.
func SeatPrice(basePrice float64, row string) float64 {
	return basePrice * CategoryForRow(row).Multiplier()
}

// Total sums per-seat prices over the given row labels. Each seat is priced
// independently, so a mixed-category selection never uses a single multiplier
// across the whole set.
func Total(basePrice float64, rows []string) float64 {
	total := 0.0
	for _, row := range rows {
		total += SeatPrice(basePrice, row)
	}
	return total
}
