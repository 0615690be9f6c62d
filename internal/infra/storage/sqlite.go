package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"bond_go/internal/domain"
)

// Storage persists the historical records in SQLite.
type Storage struct {
	db *gorm.DB
}

// NewStorage opens (or creates) the SQLite database at path and migrates
// the record tables.
func NewStorage(path string) (*Storage, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create DB directory: %w", err)
		}
	}

	// Pure Go SQLite
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(
		&domain.PositionRecord{},
		&domain.RiskRecord{},
		&domain.ExecutionRecord{},
		&domain.StreamRecord{},
		&domain.InquiryRecord{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &Storage{db: db}, nil
}

// SavePositionRecords inserts one batch of position rows.
func (s *Storage) SavePositionRecords(recs []domain.PositionRecord) error {
	return s.db.Create(&recs).Error
}

// SaveRiskRecord inserts one risk row.
func (s *Storage) SaveRiskRecord(rec *domain.RiskRecord) error {
	return s.db.Create(rec).Error
}

// SaveExecutionRecord inserts one execution row.
func (s *Storage) SaveExecutionRecord(rec *domain.ExecutionRecord) error {
	return s.db.Create(rec).Error
}

// SaveStreamRecords inserts one batch of stream rows.
func (s *Storage) SaveStreamRecords(recs []domain.StreamRecord) error {
	return s.db.Create(&recs).Error
}

// SaveInquiryRecord inserts one inquiry row.
func (s *Storage) SaveInquiryRecord(rec *domain.InquiryRecord) error {
	return s.db.Create(rec).Error
}

// PositionRecords retrieves every position row for a cusip in insertion
// order.
func (s *Storage) PositionRecords(cusip string) ([]domain.PositionRecord, error) {
	var recs []domain.PositionRecord
	err := s.db.Where("cusip = ?", cusip).Order("id").Find(&recs).Error
	return recs, err
}

// RiskRecords retrieves every risk row for a key (cusip or sector name)
// in insertion order.
func (s *Storage) RiskRecords(key string) ([]domain.RiskRecord, error) {
	var recs []domain.RiskRecord
	err := s.db.Where("key = ?", key).Order("id").Find(&recs).Error
	return recs, err
}

// ExecutionRecords retrieves every execution row for a cusip in
// insertion order.
func (s *Storage) ExecutionRecords(cusip string) ([]domain.ExecutionRecord, error) {
	var recs []domain.ExecutionRecord
	err := s.db.Where("cusip = ?", cusip).Order("id").Find(&recs).Error
	return recs, err
}

// StreamRecords retrieves every stream row for a cusip in insertion
// order.
func (s *Storage) StreamRecords(cusip string) ([]domain.StreamRecord, error) {
	var recs []domain.StreamRecord
	err := s.db.Where("cusip = ?", cusip).Order("id").Find(&recs).Error
	return recs, err
}

// InquiryRecords retrieves every row for an inquiry id in insertion
// order, one row per state transition.
func (s *Storage) InquiryRecords(inquiryID string) ([]domain.InquiryRecord, error) {
	var recs []domain.InquiryRecord
	err := s.db.Where("inquiry_id = ?", inquiryID).Order("id").Find(&recs).Error
	return recs, err
}
