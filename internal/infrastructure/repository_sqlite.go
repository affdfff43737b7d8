package infrastructure

import (
	"fmt"

	"github.com/yourusername/media-relay-go/internal/domain"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SQLiteFetchRepository implements domain.FetchRepository using SQLite
type SQLiteFetchRepository struct {
	db *gorm.DB
}

// NewSQLiteFetchRepository creates a new SQLite repository
func NewSQLiteFetchRepository(dbPath string) (*SQLiteFetchRepository, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.AutoMigrate(&domain.FetchRecord{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &SQLiteFetchRepository{db: db}, nil
}

// Create creates a new fetch record
func (r *SQLiteFetchRepository) Create(record *domain.FetchRecord) error {
	return r.db.Create(record).Error
}

// Update updates an existing fetch record
func (r *SQLiteFetchRepository) Update(record *domain.FetchRecord) error {
	return r.db.Save(record).Error
}

// FindByID finds a fetch record by ID
func (r *SQLiteFetchRepository) FindByID(id string) (*domain.FetchRecord, error) {
	var record domain.FetchRecord
	err := r.db.First(&record, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// FindRecent returns the most recent records, newest first
func (r *SQLiteFetchRepository) FindRecent(limit int) ([]*domain.FetchRecord, error) {
	var records []*domain.FetchRecord
	err := r.db.Order("created_at DESC").Limit(limit).Find(&records).Error
	return records, err
}

// GetStats returns history statistics
func (r *SQLiteFetchRepository) GetStats() (*domain.FetchStats, error) {
	stats := &domain.FetchStats{}

	if err := r.db.Model(&domain.FetchRecord{}).Count(&stats.Total).Error; err != nil {
		return nil, err
	}

	statusCounts := []struct {
		Status domain.FetchStatus
		Count  int64
	}{}

	if err := r.db.Model(&domain.FetchRecord{}).
		Select("status, count(*) as count").
		Group("status").
		Scan(&statusCounts).Error; err != nil {
		return nil, err
	}

	for _, sc := range statusCounts {
		switch sc.Status {
		case domain.StatusProcessing:
			stats.Processing = sc.Count
		case domain.StatusCompleted:
			stats.Completed = sc.Count
		case domain.StatusFailed:
			stats.Failed = sc.Count
		}
	}

	return stats, nil
}

// Close closes the database connection
func (r *SQLiteFetchRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
