package domain

// FetchRepository persists fetch history records
type FetchRepository interface {
	// Create creates a new fetch record
	Create(record *FetchRecord) error

	// Update updates an existing fetch record
	Update(record *FetchRecord) error

	// FindByID finds a fetch record by ID
	FindByID(id string) (*FetchRecord, error)

	// FindRecent returns the most recent records, newest first
	FindRecent(limit int) ([]*FetchRecord, error)

	// GetStats returns history statistics
	GetStats() (*FetchStats, error)

	// Close closes the repository
	Close() error
}
