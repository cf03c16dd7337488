// Package articlestore holds the authoritative in-memory article collection,
// backed by a single durable blob slot that is overwritten wholesale on every
// mutation. Persistence is best-effort: a failed write is logged and the
// in-memory state stands.
package articlestore

import (
	"context"
	"encoding/json"
	"slices"
	"sync"
	"time"

	"github.com/jbeshir/article-manager/internal/datasources"
	"github.com/jbeshir/article-manager/internal/datasources/blob"
	"github.com/jbeshir/article-manager/internal/domain"
)

var _ datasources.ArticleRepository = (*Store)(nil)

type Config struct {
	// SeedCount is the number of sample articles generated when the blob
	// slot is absent or unparseable.
	SeedCount int

	// SimulatedLatency is slept before each mutation, standing in for
	// network latency in demo deployments. Zero disables it.
	SimulatedLatency time.Duration
}

func DefaultConfig() Config {
	return Config{SeedCount: 50}
}

// Store serializes all mutations through a single mutex: there is exactly one
// logical writer, and each mutation plus its persist is one critical section.
// Overlapping callers commit in lock-acquisition order. Reads copy the
// collection under the lock, so queries always see a complete snapshot.
type Store struct {
	storage blob.Storage
	config  Config

	mu       sync.Mutex
	articles []domain.Article
	nextID   int64
}

// Load reads the persisted collection from storage. A missing or
// structurally unparseable blob is not an error: the store falls back to the
// generated sample collection with a warning.
func Load(ctx context.Context, storage blob.Storage, config Config) (*Store, error) {
	logger := domain.LoggerFromContext(ctx)

	var articles []domain.Article
	data, found, err := storage.Load(ctx)
	if err != nil {
		logger.WarnContext(ctx, "failed to load article collection, using generated defaults", "error", err)
	} else if found {
		if err := json.Unmarshal(data, &articles); err != nil {
			logger.WarnContext(ctx, "persisted article collection unparseable, using generated defaults", "error", err)
			articles = nil
		}
	}

	if articles == nil {
		articles = SeedArticles(config.SeedCount, time.Now().UTC())
	}

	var maxID int64
	for _, a := range articles {
		maxID = max(maxID, a.ID)
	}

	return &Store{
		storage:  storage,
		config:   config,
		articles: articles,
		nextID:   maxID + 1,
	}, nil
}

func (s *Store) ListArticles(
	ctx context.Context,
	filters domain.ArticleFilters,
	options domain.ArticleListOptions,
) ([]domain.Article, domain.Pagination, error) {
	s.mu.Lock()
	snapshot := slices.Clone(s.articles)
	s.mu.Unlock()

	matched := domain.FilterArticles(snapshot, filters)
	domain.SortArticles(matched, options.Sort)
	data, pagination := domain.PaginateArticles(matched, options.Page, options.PageSize)
	return data, pagination, nil
}

func (s *Store) GetArticle(ctx context.Context, id int64) (domain.Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range s.articles {
		if a.ID == id {
			return a, nil
		}
	}
	return domain.Article{}, domain.ErrNotFound
}

// CreateArticle assigns the next ID and timestamps, and prepends the new
// record so an unsorted read sees most-recent-first insertion order.
func (s *Store) CreateArticle(ctx context.Context, form domain.ArticleForm) (domain.Article, error) {
	s.simulateLatency()

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	article := domain.Article{
		ID:        s.nextID,
		Title:     form.Title,
		Status:    form.Status,
		Author:    form.Author,
		CreatedAt: now,
		UpdatedAt: &now,
		Content:   form.Content,
		Summary:   form.Summary,
	}
	s.nextID++

	s.articles = append([]domain.Article{article}, s.articles...)
	s.persist(ctx)

	return article, nil
}

// UpdateArticle merges the patch onto the existing record in place,
// preserving its position in the collection.
func (s *Store) UpdateArticle(ctx context.Context, id int64, patch domain.ArticlePatch) (domain.Article, error) {
	s.simulateLatency()

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := slices.IndexFunc(s.articles, func(a domain.Article) bool { return a.ID == id })
	if idx < 0 {
		return domain.Article{}, domain.ErrNotFound
	}

	now := time.Now().UTC()
	updated := patch.Apply(s.articles[idx])
	updated.UpdatedAt = &now

	s.articles[idx] = updated
	s.persist(ctx)

	return updated, nil
}

func (s *Store) DeleteArticle(ctx context.Context, id int64) error {
	s.simulateLatency()

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := slices.IndexFunc(s.articles, func(a domain.Article) bool { return a.ID == id })
	if idx < 0 {
		return domain.ErrNotFound
	}

	s.articles = slices.Delete(s.articles, idx, idx+1)
	s.persist(ctx)

	return nil
}

// persist writes the whole collection back to the blob slot. Failures are
// non-fatal; the in-memory collection remains the source of truth.
// Callers must hold s.mu.
func (s *Store) persist(ctx context.Context) {
	logger := domain.LoggerFromContext(ctx)

	data, err := json.Marshal(s.articles)
	if err != nil {
		logger.WarnContext(ctx, "failed to serialize article collection", "error", err)
		return
	}

	if err := s.storage.Store(ctx, data); err != nil {
		logger.WarnContext(ctx, "failed to persist article collection", "error", err)
	}
}

// simulateLatency runs before the lock is taken, so the artificial delay
// never extends the critical section. Mutations are not cancellable once
// invoked; the delay always elapses in full.
func (s *Store) simulateLatency() {
	if s.config.SimulatedLatency > 0 {
		time.Sleep(s.config.SimulatedLatency)
	}
}
