// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

// Pagination defines page-based pagination options shared by list operations.
type Pagination struct {
	Page  int
	Limit int
}

// SortOrder is the direction of a sort field.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// Sort pairs a column name with a direction.
type Sort struct {
	Field string
	Order SortOrder
}
