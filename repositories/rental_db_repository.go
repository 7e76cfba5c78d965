package repositories

// RentalDbRepository groups every query against the rental database. Methods
// are spread over one file per aggregate.
type RentalDbRepository struct{}
