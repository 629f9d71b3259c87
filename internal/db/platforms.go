package db

import (
	"database/sql"
	"fmt"

	"github.com/tgienger/ctrack/internal/models"
)

func insertPlatforms(tx *sql.Tx, campaignID string, platforms []models.Platform) error {
	for i, p := range platforms {
		_, err := tx.Exec(`
			INSERT OR IGNORE INTO campaign_platforms (campaign_id, position, platform) VALUES (?, ?, ?)
		`, campaignID, i, string(p))
		if err != nil {
			return fmt.Errorf("insert platform %s for %s: %w", p, campaignID, err)
		}
	}
	return nil
}

// GetCampaignPlatforms returns a campaign's platforms in selection order.
// Names no longer in the catalog are skipped.
func (db *DB) GetCampaignPlatforms(campaignID string) ([]models.Platform, error) {
	rows, err := db.Query(`
		SELECT platform FROM campaign_platforms
		WHERE campaign_id = ?
		ORDER BY position
	`, campaignID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var platforms []models.Platform
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		p, err := models.ParsePlatform(name)
		if err != nil {
			continue
		}
		platforms = append(platforms, p)
	}
	return platforms, rows.Err()
}
