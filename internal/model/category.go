package model

// PayableCategory is an optional reference from a payable. Deleting a category
// nulls the reference on dependent payables instead of deleting them.
type PayableCategory struct {
	ID    int
	Name  string
	Slug  string
	Color string
}
