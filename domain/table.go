package domain

// Table is a mongo collection name
type Table string

const (
	TableFilterStates Table = "filter_states"
)
