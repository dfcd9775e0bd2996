package response

// TicketResponse is the caller-facing ticket returned by a successful
// reservation. All fields are read back from the committed booking row and
// its joins.
type TicketResponse struct {
	BookingID   string   `json:"bookingId"`
	UserName    string   `json:"userName"`
	MovieName   string   `json:"movieName"`
	ShowDate    string   `json:"showDate"`
	ShowTime    string   `json:"showTime"`
	Seats       []string `json:"seats"`
	TotalAmount float64  `json:"totalAmount"`
	Hash        string   `json:"hash"`
}

// TicketEnvelope wraps the ticket in the reservation response body.
type TicketEnvelope struct {
	Ticket TicketResponse `json:"ticket"`
}
