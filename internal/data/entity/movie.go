package entity

type Movie struct {
	Base
	Title       string  `db:"title"`
	Description string  `db:"description"`
	BasePrice   float64 `db:"base_price"`
}
