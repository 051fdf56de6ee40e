package services

import (
	"context"

	"sklyit/database"
	"sklyit/models"
)

// PreferencesService persists per-user preferences such as search history.
type PreferencesService struct {
	db database.Querier
}

func NewPreferencesService(db database.Querier) *PreferencesService {
	return &PreferencesService{db: db}
}

// AddSearchHistory appends one search to the user's history.
func (s *PreferencesService) AddSearchHistory(ctx context.Context, userID, queryText, location string) error {
	if userID == "" {
		return models.MissingField("user id")
	}
	_, err := s.db.Exec(ctx, `
		INSERT INTO search_history (user_id, query_text, location, searched_at)
		VALUES ($1, $2, $3, NOW())
	`, userID, queryText, location)
	if err != nil {
		return models.Upstream("failed to record search history", err)
	}
	return nil
}

// GetSearchHistory lists the user's most recent searches, newest first.
func (s *PreferencesService) GetSearchHistory(ctx context.Context, userID string, limit int) ([]models.SearchHistoryEntry, error) {
	if userID == "" {
		return nil, models.MissingField("user id")
	}
	if limit < 1 {
		limit = 20
	}
	rows, err := s.db.Query(ctx, `
		SELECT query_text, location, searched_at
		FROM search_history
		WHERE user_id = $1
		ORDER BY searched_at DESC
		LIMIT $2
	`, userID, limit)
	if err != nil {
		return nil, models.Upstream("failed to fetch search history", err)
	}
	defer rows.Close()

	entries := []models.SearchHistoryEntry{}
	for rows.Next() {
		var e models.SearchHistoryEntry
		if err := rows.Scan(&e.QueryText, &e.Location, &e.SearchedAt); err != nil {
			return nil, models.Upstream("failed to read search history row", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
