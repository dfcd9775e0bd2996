package request

type CreateMovieRequest struct {
	Title       string  `json:"title" validate:"required,min=1,max=200"`
	Description string  `json:"description" validate:"max=2000"`
	BasePrice   float64 `json:"base_price" validate:"omitempty,gt=0"`
}
