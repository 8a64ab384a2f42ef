package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"bytescope/internal/analyzer"
	"bytescope/internal/compare"
	"bytescope/internal/signatures"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// AnalysisRecord bookmarks one contract analysis. The full ContractAnalysis
// travels as JSON in Payload; the flat columns exist for listing and queries.
type AnalysisRecord struct {
	Chain           string          `gorm:"column:chain;primaryKey"`
	Address         string          `gorm:"column:address;primaryKey"`
	ContractName    string          `gorm:"column:contract_name"`
	SizeBytes       int             `gorm:"column:size_bytes"`
	ProxyType       string          `gorm:"column:proxy_type"`
	ComplexityScore float64         `gorm:"column:complexity_score"`
	Payload         json.RawMessage `gorm:"column:payload"`
	AnalyzedAt      time.Time       `gorm:"column:analyzed_at"`
}

func (AnalysisRecord) TableName() string { return "analyses" }

// ComparisonRecord bookmarks one comparison run.
type ComparisonRecord struct {
	ID        uint            `gorm:"primaryKey;autoIncrement"`
	Chain     string          `gorm:"column:chain"`
	Label     string          `gorm:"column:label"`
	Payload   json.RawMessage `gorm:"column:payload"`
	CreatedAt time.Time       `gorm:"column:created_at"`
}

func (ComparisonRecord) TableName() string { return "comparisons" }

// ErrNotFound is returned when a bookmark does not exist.
var ErrNotFound = errors.New("record not found")

type Store struct {
	db *gorm.DB
}

// Open creates/opens the sqlite database and migrates the bookmark tables.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to SQLite: %w", err)
	}

	if err := db.AutoMigrate(&AnalysisRecord{}, &ComparisonRecord{}); err != nil {
		return nil, fmt.Errorf("failed to migrate tables: %w", err)
	}
	return &Store{db: db}, nil
}

// SaveAnalysis upserts the analysis bookmark for (chain, address).
func (s *Store) SaveAnalysis(chain string, a *analyzer.ContractAnalysis) error {
	payload, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("failed to encode analysis: %w", err)
	}
	record := AnalysisRecord{
		Chain:           chain,
		Address:         a.Address,
		ContractName:    a.ContractName,
		SizeBytes:       a.SizeBytes,
		ProxyType:       string(a.ProxyType),
		ComplexityScore: a.ComplexityScore,
		Payload:         payload,
		AnalyzedAt:      time.Now(),
	}
	return s.db.Save(&record).Error
}

// GetAnalysis loads a bookmarked analysis back.
func (s *Store) GetAnalysis(chain, address string) (*analyzer.ContractAnalysis, error) {
	var record AnalysisRecord
	err := s.db.Where("chain = ? AND address = ?", chain, address).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s on %s", ErrNotFound, address, chain)
	}
	if err != nil {
		return nil, err
	}
	var analysis analyzer.ContractAnalysis
	if err := json.Unmarshal(record.Payload, &analysis); err != nil {
		return nil, fmt.Errorf("failed to decode analysis payload: %w", err)
	}
	// The binary selector is excluded from the JSON payload; rebuild it from
	// the hex form so a loaded analysis compares like a fresh one.
	for i := range analysis.DetectedPatterns {
		p := &analysis.DetectedPatterns[i]
		if sel, ok := signatures.ParseSelector(p.SelectorID); ok {
			p.Selector = sel
		}
	}
	return &analysis, nil
}

// ListAnalyses returns the bookmark rows for a chain, newest first.
func (s *Store) ListAnalyses(chain string) ([]AnalysisRecord, error) {
	var records []AnalysisRecord
	err := s.db.Where("chain = ?", chain).Order("analyzed_at desc").Find(&records).Error
	return records, err
}

// SaveComparison appends a comparison bookmark.
func (s *Store) SaveComparison(chain, label string, cmp *compare.ContractComparison) error {
	payload, err := json.Marshal(cmp)
	if err != nil {
		return fmt.Errorf("failed to encode comparison: %w", err)
	}
	record := ComparisonRecord{
		Chain:     chain,
		Label:     label,
		Payload:   payload,
		CreatedAt: time.Now(),
	}
	return s.db.Create(&record).Error
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
