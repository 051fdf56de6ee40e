package services

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sklyit/cache"
	"sklyit/models"
)

type fakeSearcher struct {
	calls   int
	results []models.BusinessClient
	total   int
	err     error
}

func (f *fakeSearcher) SearchClients(ctx context.Context, filters models.SearchFilters) ([]models.BusinessClient, int, error) {
	f.calls++
	return f.results, f.total, f.err
}

type fakeHistory struct {
	calls int
	err   error
	last  string
}

func (f *fakeHistory) AddSearchHistory(ctx context.Context, userID, queryText, location string) error {
	f.calls++
	f.last = queryText
	return f.err
}

func newSearchFixture(searcher *fakeSearcher, history *fakeHistory) *SearchService {
	return NewSearchService(searcher, cache.NewMemory(), history, 5*time.Minute, zerolog.Nop())
}

func TestSearchCacheHitSkipsSecondQuery(t *testing.T) {
	searcher := &fakeSearcher{
		results: []models.BusinessClient{{BusinessID: "b1", ClientName: "Acme Salon"}},
		total:   1,
	}
	svc := newSearchFixture(searcher, &fakeHistory{})
	filters := models.SearchFilters{QueryString: "salon", Page: 1, Limit: 10}

	first, err := svc.SearchBusinessClients(context.Background(), filters, "u1")
	require.NoError(t, err)
	second, err := svc.SearchBusinessClients(context.Background(), filters, "u1")
	require.NoError(t, err)

	assert.Equal(t, 1, searcher.calls, "second identical search must be served from cache")
	assert.Equal(t, first, second)
}

func TestSearchDistinctPagesCacheSeparately(t *testing.T) {
	searcher := &fakeSearcher{total: 30}
	svc := newSearchFixture(searcher, &fakeHistory{})

	_, err := svc.SearchBusinessClients(context.Background(), models.SearchFilters{QueryString: "spa", Page: 1, Limit: 10}, "u1")
	require.NoError(t, err)
	_, err = svc.SearchBusinessClients(context.Background(), models.SearchFilters{QueryString: "spa", Page: 2, Limit: 10}, "u1")
	require.NoError(t, err)

	assert.Equal(t, 2, searcher.calls)
}

func TestSearchClearCacheForcesRequery(t *testing.T) {
	searcher := &fakeSearcher{total: 0}
	svc := newSearchFixture(searcher, &fakeHistory{})
	filters := models.SearchFilters{QueryString: "gym", Page: 1, Limit: 10}

	_, err := svc.SearchBusinessClients(context.Background(), filters, "u1")
	require.NoError(t, err)
	require.NoError(t, svc.ClearCache(context.Background()))
	_, err = svc.SearchBusinessClients(context.Background(), filters, "u1")
	require.NoError(t, err)

	assert.Equal(t, 2, searcher.calls)
}

func TestSearchNormalizesPageAndLimit(t *testing.T) {
	searcher := &fakeSearcher{}
	svc := newSearchFixture(searcher, &fakeHistory{})

	result, err := svc.SearchBusinessClients(context.Background(), models.SearchFilters{Page: -3, Limit: 0}, "u1")
	require.NoError(t, err)
	assert.Equal(t, 1, result.Page)
	assert.Equal(t, 10, result.Limit)
}

func TestSearchHistoryFailureDoesNotFailSearch(t *testing.T) {
	searcher := &fakeSearcher{total: 1}
	history := &fakeHistory{err: errors.New("insert failed")}
	svc := newSearchFixture(searcher, history)

	_, err := svc.SearchBusinessClients(context.Background(), models.SearchFilters{QueryString: "bakery"}, "u1")
	require.NoError(t, err)
	assert.Equal(t, 1, history.calls)
	assert.Equal(t, "bakery", history.last)
}

func TestSearchAnonymousSkipsHistory(t *testing.T) {
	history := &fakeHistory{}
	svc := newSearchFixture(&fakeSearcher{}, history)

	_, err := svc.SearchBusinessClients(context.Background(), models.SearchFilters{QueryString: "bakery"}, "")
	require.NoError(t, err)
	assert.Equal(t, 0, history.calls)
}

func TestSearchUnreadableCacheEntryFallsThrough(t *testing.T) {
	searcher := &fakeSearcher{total: 1}
	store := cache.NewMemory()
	var buf bytes.Buffer
	svc := NewSearchService(searcher, store, &fakeHistory{}, 5*time.Minute, zerolog.New(&buf))

	filters := models.SearchFilters{QueryString: "salon", Page: 1, Limit: 10}
	filters.Normalize()
	require.NoError(t, store.Set(context.Background(), filters.CacheKey(), []byte("{not json"), 5*time.Minute))

	result, err := svc.SearchBusinessClients(context.Background(), filters, "u1")
	require.NoError(t, err)
	assert.Equal(t, 1, searcher.calls, "unreadable cache entry must fall through to the searcher")
	assert.Equal(t, 1, result.Total)
	assert.Contains(t, buf.String(), "discarding unreadable cache entry")
	assert.Contains(t, buf.String(), "invalid character", "log line must carry the decode error")
}

func TestSearchEmptyResultIsNeverNil(t *testing.T) {
	svc := newSearchFixture(&fakeSearcher{results: nil}, &fakeHistory{})

	result, err := svc.SearchBusinessClients(context.Background(), models.SearchFilters{QueryString: "nothing"}, "u1")
	require.NoError(t, err)
	assert.NotNil(t, result.Data)
	assert.Empty(t, result.Data)
}

func TestSearchUpstreamErrorPropagates(t *testing.T) {
	svc := newSearchFixture(&fakeSearcher{err: errors.New("db down")}, &fakeHistory{})

	_, err := svc.SearchBusinessClients(context.Background(), models.SearchFilters{QueryString: "x"}, "u1")
	assert.Equal(t, models.ErrKindUpstream, models.KindOf(err))
}
