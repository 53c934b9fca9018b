package storage

const (
	// DatabaseVersion defines the current version of the database.
	DatabaseVersion byte = 1
)
