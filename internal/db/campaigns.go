package db

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/tgienger/ctrack/internal/models"
	"github.com/tgienger/ctrack/internal/store"
)

const timestampLayout = time.RFC3339Nano

func formatTime(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

func parseTime(s string) (time.Time, error) {
	return time.Parse(timestampLayout, s)
}

// SaveState replaces the stored snapshot with state in a single transaction
func (db *DB) SaveState(state store.State) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, table := range []string{"insight_notes", "campaign_platforms", "campaigns"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	for i, c := range state.Active {
		if err := insertCampaign(tx, i, c); err != nil {
			return err
		}
	}
	for i, c := range state.Archived {
		if err := insertCampaign(tx, i, c); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func insertCampaign(tx *sql.Tx, position int, c models.Campaign) error {
	var archivedAt *string
	if c.ArchivedAt != nil {
		at := formatTime(*c.ArchivedAt)
		archivedAt = &at
	}

	_, err := tx.Exec(`
		INSERT INTO campaigns (id, position, name, start_date, end_date, notes, created_at, updated_at, archived_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, c.ID, position, c.Name,
		c.StartDate.Format(models.DateLayout), c.EndDate.Format(models.DateLayout),
		c.Notes, formatTime(c.CreatedAt), formatTime(c.UpdatedAt), archivedAt)
	if err != nil {
		return fmt.Errorf("insert campaign %s: %w", c.ID, err)
	}

	if err := insertPlatforms(tx, c.ID, c.Platforms); err != nil {
		return err
	}
	return insertInsightNotes(tx, c.ID, c.InsightNotes)
}

// LoadState reads the stored snapshot. An empty database yields an empty state.
func (db *DB) LoadState() (store.State, error) {
	rows, err := db.Query(`
		SELECT id, name, start_date, end_date, notes, created_at, updated_at, archived_at
		FROM campaigns
		ORDER BY archived_at IS NOT NULL, position
	`)
	if err != nil {
		return store.State{}, err
	}
	defer rows.Close()

	var state store.State
	for rows.Next() {
		c, err := scanCampaign(rows)
		if err != nil {
			return store.State{}, err
		}
		if c.Archived() {
			state.Archived = append(state.Archived, c)
		} else {
			state.Active = append(state.Active, c)
		}
	}
	if err := rows.Err(); err != nil {
		return store.State{}, err
	}

	// Load platforms and notes for each campaign
	for i := range state.Active {
		if state.Active[i].Platforms, err = db.GetCampaignPlatforms(state.Active[i].ID); err != nil {
			return store.State{}, err
		}
	}
	for i := range state.Archived {
		c := &state.Archived[i]
		if c.Platforms, err = db.GetCampaignPlatforms(c.ID); err != nil {
			return store.State{}, err
		}
		if c.InsightNotes, err = db.GetInsightNotes(c.ID); err != nil {
			return store.State{}, err
		}
	}

	return state, nil
}

func scanCampaign(rows *sql.Rows) (models.Campaign, error) {
	var (
		c                    models.Campaign
		start, end           string
		createdAt, updatedAt string
		archivedAt           sql.NullString
	)
	if err := rows.Scan(&c.ID, &c.Name, &start, &end, &c.Notes, &createdAt, &updatedAt, &archivedAt); err != nil {
		return c, err
	}

	var err error
	if c.StartDate, err = time.Parse(models.DateLayout, start); err != nil {
		return c, fmt.Errorf("campaign %s start date: %w", c.ID, err)
	}
	if c.EndDate, err = time.Parse(models.DateLayout, end); err != nil {
		return c, fmt.Errorf("campaign %s end date: %w", c.ID, err)
	}
	if c.CreatedAt, err = parseTime(createdAt); err != nil {
		return c, fmt.Errorf("campaign %s created_at: %w", c.ID, err)
	}
	if c.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return c, fmt.Errorf("campaign %s updated_at: %w", c.ID, err)
	}
	if archivedAt.Valid {
		at, err := parseTime(archivedAt.String)
		if err != nil {
			return c, fmt.Errorf("campaign %s archived_at: %w", c.ID, err)
		}
		c.ArchivedAt = &at
		c.InsightNotes = []models.InsightNote{}
	}
	return c, nil
}

// CampaignCount returns the number of stored campaigns, active and archived
func (db *DB) CampaignCount() (int, error) {
	var count int
	err := db.QueryRow("SELECT COUNT(*) FROM campaigns").Scan(&count)
	return count, err
}
