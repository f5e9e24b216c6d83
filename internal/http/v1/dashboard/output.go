package dashboard

// ListData is a page of a trip list.
type ListData[T any] struct {
	Items []T `json:"items" doc:"Page items"`
	Total int `json:"total" doc:"Total count of items in the list" example:"2"`
}

// BookingListOutput is the response wrapper with pagination Link header.
type BookingListOutput struct {
	Link string `header:"Link" doc:"RFC 8288 pagination links"`
	Body ListData[Booking]
}

// FavoriteListOutput is the response wrapper with pagination Link header.
type FavoriteListOutput struct {
	Link string `header:"Link" doc:"RFC 8288 pagination links"`
	Body ListData[Favorite]
}
