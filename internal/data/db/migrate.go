package db

import (
	"fmt"

	"gorm.io/gorm"

	types "github.com/yungbote/bacprep-backend/internal/domain"
)

func AutoMigrateAll(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&types.Student{},
		&types.Subject{},
		&types.Quiz{},
		&types.Summary{},
		&types.Booking{},
		&types.Alumni{},
	); err != nil {
		return err
	}
	return EnsureSummaryIndexes(db)
}

// EnsureSummaryIndexes enforces at most one cached summary per
// (subject_id, chapter). Portable across postgres and sqlite.
func EnsureSummaryIndexes(db *gorm.DB) error {
	if err := db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_summaries_cached_subject_chapter
		ON summaries (subject_id, chapter)
		WHERE is_cached = true;
	`).Error; err != nil {
		return fmt.Errorf("create idx_summaries_cached_subject_chapter: %w", err)
	}
	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_summaries_student_created
		ON summaries (student_id, created_at);
	`).Error; err != nil {
		return fmt.Errorf("create idx_summaries_student_created: %w", err)
	}
	return nil
}
