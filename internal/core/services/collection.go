package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/museo/internal/core/domain"
	"github.com/custodia-labs/museo/internal/core/ports/driven"
	"github.com/custodia-labs/museo/internal/core/ports/driving"
	"github.com/custodia-labs/museo/internal/logger"
)

// Ensure CollectionService implements the interface.
var _ driving.CollectionService = (*CollectionService)(nil)

// CollectionService pages through the remote catalog, normalises the
// records and hands finished batches to the artifact store.
type CollectionService struct {
	client     driven.CatalogClient
	normaliser driven.RecordNormaliser
	store      driven.ArtifactStore
	pageSize   int

	// running guards against overlapping fetches.
	running sync.Mutex

	// now and newID are replaceable in tests.
	now   func() time.Time
	newID func() string
}

// NewCollectionService creates a new collection service.
// A pageSize of zero or less falls back to domain.DefaultPageSize.
func NewCollectionService(
	client driven.CatalogClient,
	normaliser driven.RecordNormaliser,
	store driven.ArtifactStore,
	pageSize int,
) *CollectionService {
	if pageSize <= 0 {
		pageSize = domain.DefaultPageSize
	}
	return &CollectionService{
		client:     client,
		normaliser: normaliser,
		store:      store,
		pageSize:   pageSize,
		now:        time.Now,
		newID:      uuid.NewString,
	}
}

// Collect fetches up to limit records for a classification and normalises them.
func (s *CollectionService) Collect(
	ctx context.Context,
	classification string,
	limit int,
	progress driving.ProgressFunc,
) (*domain.ResultSet, error) {
	if classification == "" {
		return nil, fmt.Errorf("%w: classification is required", domain.ErrInvalidInput)
	}
	if limit <= 0 {
		return nil, fmt.Errorf("%w: limit must be positive, got %d", domain.ErrInvalidInput, limit)
	}
	if s.client == nil {
		return nil, fmt.Errorf("collect: catalog client not configured")
	}
	if !s.running.TryLock() {
		return nil, domain.ErrFetchInProgress
	}
	defer s.running.Unlock()

	logger.Section("Collect")
	logger.Info("Fetching %q: limit=%d page_size=%d", classification, limit, s.pageSize)

	records, pages, outcome, fetchErr := s.paginate(ctx, classification, limit, progress)

	logger.Info("Completed fetching %q (%d records, %s)", classification, len(records), outcome)

	batch := &domain.ResultSet{
		BatchID:        s.newID(),
		Classification: classification,
		Limit:          limit,
		Pages:          pages,
		Outcome:        outcome,
		FetchErr:       fetchErr,
		FetchedAt:      s.now(),
	}
	if s.normaliser != nil {
		batch.Relations = s.normaliser.Normalise(records, classification)
	}
	logger.Debug("Normalised batch %s: %d metadata, %d media, %d colors",
		batch.BatchID, len(batch.Metadata), len(batch.Media), len(batch.Colors))

	return batch, nil
}

// paginate requests pages sequentially from page 1 until limit records are
// held, a page fails, a page comes back empty, or the page cap derived from
// limit is passed. The result is truncated to exactly limit records.
func (s *CollectionService) paginate(
	ctx context.Context,
	classification string,
	limit int,
	progress driving.ProgressFunc,
) ([]domain.RawRecord, int, domain.FetchOutcome, error) {
	maxPages := (limit + s.pageSize - 1) / s.pageSize

	var (
		records  []domain.RawRecord
		pages    int
		outcome  = domain.OutcomeSourceExhausted
		fetchErr error
	)

	for page := 1; len(records) < limit; {
		logger.Debug("GET page %d (size %d)", page, s.pageSize)

		result, err := s.client.FetchPage(ctx, classification, page, s.pageSize)
		if err != nil {
			logger.Warn("Page %d failed, keeping %d records: %v", page, len(records), err)
			outcome = domain.OutcomeTransportFailure
			fetchErr = err
			break
		}
		if result == nil || len(result.Records) == 0 {
			logger.Debug("Page %d is empty, source exhausted", page)
			break
		}

		records = append(records, result.Records...)
		pages++
		page++

		if progress != nil {
			progress(domain.FetchProgress{
				Classification: classification,
				Page:           pages,
				Fetched:        min(len(records), limit),
				Limit:          limit,
			})
		}

		if page > maxPages {
			break
		}
	}

	if len(records) >= limit {
		records = records[:limit]
		if outcome != domain.OutcomeTransportFailure {
			outcome = domain.OutcomeLimitReached
		}
	}

	return records, pages, outcome, fetchErr
}

// Persist writes a batch's relations to the artifact store.
func (s *CollectionService) Persist(ctx context.Context, batch *domain.ResultSet) error {
	if batch == nil || batch.IsEmpty() {
		logger.Warn("Persist refused: no metadata collected")
		return domain.ErrNoData
	}
	if s.store == nil {
		return fmt.Errorf("persist: artifact store not configured")
	}

	logger.Info("Persisting batch %s to %s", batch.BatchID, s.store.Path())
	defer logger.Timed("persist")()
	if err := s.store.Replace(ctx, batch.Relations); err != nil {
		return fmt.Errorf("persist: %w", err)
	}
	return nil
}
