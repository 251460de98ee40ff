package editor

// UpdateCellResult reports whether UpdateCell wrote anything.
type UpdateCellResult struct {
	Changed  bool
	OldValue string
	NewValue string
}

// AddRowResult describes the inserted row.
type AddRowResult struct {
	Code string
	// ID is the assigned id when the table has an id column.
	ID *int64
}
