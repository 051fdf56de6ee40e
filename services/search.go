package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog"

	"sklyit/cache"
	"sklyit/models"
)

// ClientSearcher is the read model the search service queries on a cache
// miss.
type ClientSearcher interface {
	SearchClients(ctx context.Context, filters models.SearchFilters) ([]models.BusinessClient, int, error)
}

// HistoryRecorder records what a user searched for.
type HistoryRecorder interface {
	AddSearchHistory(ctx context.Context, userID, queryText, location string) error
}

// SearchService serves business search with a cache-aside TTL cache.
type SearchService struct {
	searcher ClientSearcher
	cache    cache.Store
	history  HistoryRecorder
	ttl      time.Duration
	log      zerolog.Logger
}

func NewSearchService(searcher ClientSearcher, store cache.Store, history HistoryRecorder, ttl time.Duration, log zerolog.Logger) *SearchService {
	return &SearchService{searcher: searcher, cache: store, history: history, ttl: ttl, log: log}
}

// SearchBusinessClients records the search against the caller's history,
// then serves the page from the cache when possible. A failed history write
// or cache operation never fails the search itself.
func (s *SearchService) SearchBusinessClients(ctx context.Context, filters models.SearchFilters, userID string) (models.SearchResult, error) {
	filters.Normalize()

	if userID != "" {
		if err := s.history.AddSearchHistory(ctx, userID, filters.QueryString, filters.Location); err != nil {
			s.log.Warn().Err(err).Str("user_id", userID).Msg("failed to record search history")
		}
	}

	key := filters.CacheKey()

	raw, hit, err := s.cache.Get(ctx, key)
	if err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("cache lookup failed")
	} else if hit {
		var cached models.SearchResult
		if err := json.Unmarshal(raw, &cached); err != nil {
			s.log.Warn().Err(err).Str("key", key).Msg("discarding unreadable cache entry")
		} else {
			s.log.Debug().Str("key", key).Msg("returning cached search page")
			return cached, nil
		}
	}

	data, total, err := s.searcher.SearchClients(ctx, filters)
	if err != nil {
		return models.SearchResult{}, models.Upstream("business search failed", err)
	}
	if data == nil {
		data = []models.BusinessClient{}
	}

	result := models.SearchResult{Data: data, Total: total, Page: filters.Page, Limit: filters.Limit}

	if raw, err := json.Marshal(result); err == nil {
		if err := s.cache.Set(ctx, key, raw, s.ttl); err != nil {
			s.log.Warn().Err(err).Str("key", key).Msg("failed to cache search page")
		}
	}

	return result, nil
}

// ClearCache drops every cached search page.
func (s *SearchService) ClearCache(ctx context.Context) error {
	if err := s.cache.Reset(ctx); err != nil {
		return models.Upstream("failed to clear search cache", err)
	}
	return nil
}
