package create_quote

// Request is a quote request. City and email are optional; quotes carry no
// date or time and are never counted against slot capacity.
type Request struct {
	FirstName string
	LastName  string
	Phone     string
	Email     string
	City      string
	Model     string
	Issue     string
}

// Response carries the identifier assigned to the stored quote.
type Response struct {
	ID string
}
