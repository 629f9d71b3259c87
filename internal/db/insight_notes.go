package db

import (
	"database/sql"
	"fmt"

	"github.com/tgienger/ctrack/internal/models"
)

func insertInsightNotes(tx *sql.Tx, campaignID string, notes []models.InsightNote) error {
	for i, n := range notes {
		_, err := tx.Exec(`
			INSERT INTO insight_notes (campaign_id, position, content, created_at) VALUES (?, ?, ?, ?)
		`, campaignID, i, n.Content, formatTime(n.CreatedAt))
		if err != nil {
			return fmt.Errorf("insert insight note for %s: %w", campaignID, err)
		}
	}
	return nil
}

// GetInsightNotes retrieves a campaign's insight notes in the order they were added
func (db *DB) GetInsightNotes(campaignID string) ([]models.InsightNote, error) {
	rows, err := db.Query(`
		SELECT content, created_at
		FROM insight_notes
		WHERE campaign_id = ?
		ORDER BY position ASC
	`, campaignID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notes := []models.InsightNote{}
	for rows.Next() {
		var (
			n         models.InsightNote
			createdAt string
		)
		if err := rows.Scan(&n.Content, &createdAt); err != nil {
			return nil, err
		}
		if n.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}
