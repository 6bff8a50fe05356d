package reports

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"match-backend/internal/shared/telemetry"
)

// MaxReports caps the collection; insertion beyond the cap evicts the
// oldest record.
const MaxReports = 50

const syncTimeout = 10 * time.Second

// Store owns the in-memory report collection, newest first. It is
// constructed once at process start and injected into handlers. Every
// mutation schedules a best-effort asynchronous write to the mirror;
// mirror failures are logged and never surfaced to callers.
type Store struct {
	mirror     Mirror
	legacyPath string
	now        func() time.Time

	mu      sync.RWMutex
	reports []Report

	initOnce sync.Once

	syncWG   sync.WaitGroup
	syncMu   sync.Mutex
	syncSeq  uint64 // next snapshot number, guarded by mu
	syncDone uint64 // last snapshot written, guarded by syncMu
}

// Option customizes a Store.
type Option func(*Store)

// WithLegacyResumeFile points the one-shot migration at a legacy resume
// file; records in it that are absent from the mirror are imported on
// first use.
func WithLegacyResumeFile(path string) Option {
	return func(s *Store) { s.legacyPath = path }
}

// WithClock overrides the timestamp source (tests).
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// NewStore constructs a store backed by mirror. Loading is lazy: the
// first operation pulls the mirrored collection and runs the legacy
// migration.
func NewStore(mirror Mirror, opts ...Option) *Store {
	s := &Store{
		mirror: mirror,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) ensureLoaded(ctx context.Context) {
	s.initOnce.Do(func() {
		loaded, err := s.mirror.LoadAll(ctx)
		if err != nil {
			telemetry.Error("storage.load_failed", map[string]any{"error": err.Error()})
			loaded = []Report{}
		}

		migrated := false
		if s.legacyPath != "" {
			loaded, migrated = migrateLegacyResumes(s.legacyPath, loaded)
		}

		s.mu.Lock()
		s.reports = loaded
		if migrated {
			s.scheduleSyncLocked()
		}
		s.mu.Unlock()
	})
}

// GetAll returns the full collection, newest first, as a defensive copy.
func (s *Store) GetAll(ctx context.Context) ([]Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.ensureLoaded(ctx)

	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Report, len(s.reports))
	copy(out, s.reports)
	return out, nil
}

// Save assigns an ID and equal timestamps, derives a title when the
// draft has none, prepends the record, evicts beyond the cap, and
// schedules a mirror write. Callers validate inputs; the store does not.
func (s *Store) Save(ctx context.Context, draft Draft) (Report, error) {
	if err := ctx.Err(); err != nil {
		return Report{}, err
	}
	s.ensureLoaded(ctx)

	title := draft.Title
	if title == "" {
		content := draft.JobDescription
		if draft.Type == TypeBeautifiedHTML {
			content = draft.Resume
		}
		title = GenerateTitle(content, draft.Type)
	}

	now := s.now().UTC()
	report := Report{
		ID:             uuid.NewString(),
		Title:          title,
		Type:           draft.Type,
		CreatedAt:      now,
		UpdatedAt:      now,
		JobDescription: draft.JobDescription,
		Resume:         draft.Resume,
		Analysis:       draft.Analysis,
		HTMLContent:    draft.HTMLContent,
	}

	s.mu.Lock()
	s.reports = append([]Report{report}, s.reports...)
	if len(s.reports) > MaxReports {
		s.reports = s.reports[:MaxReports]
	}
	s.scheduleSyncLocked()
	s.mu.Unlock()

	return report, nil
}

// Update merges non-nil fields into the record and refreshes updatedAt.
// It returns nil when the id is absent; callers must check.
func (s *Store) Update(ctx context.Context, id string, updates Update) (*Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.ensureLoaded(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOfLocked(id)
	if idx < 0 {
		return nil, nil
	}

	r := &s.reports[idx]
	if updates.Title != nil {
		r.Title = *updates.Title
	}
	if updates.Resume != nil {
		r.Resume = *updates.Resume
	}
	if updates.Analysis != nil {
		r.Analysis = *updates.Analysis
	}
	if updates.HTMLContent != nil {
		r.HTMLContent = *updates.HTMLContent
	}
	r.UpdatedAt = s.now().UTC()

	updated := *r
	s.scheduleSyncLocked()
	return &updated, nil
}

// Delete removes the record. False means "not found", not an error.
func (s *Store) Delete(ctx context.Context, id string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	s.ensureLoaded(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOfLocked(id)
	if idx < 0 {
		return false, nil
	}
	s.reports = append(s.reports[:idx], s.reports[idx+1:]...)
	s.scheduleSyncLocked()
	return true, nil
}

// GetByID returns a copy of the record, or nil when absent. It does not
// touch view counts; the durable fetch path is View.
func (s *Store) GetByID(ctx context.Context, id string) (*Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.ensureLoaded(ctx)

	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.indexOfLocked(id)
	if idx < 0 {
		return nil, nil
	}
	r := s.reports[idx]
	return &r, nil
}

// View is the durable fetch path for beautified resumes: it increments
// viewCount by exactly one, refreshes updatedAt, and persists. Nil when
// the id is absent or the record is not a beautified resume.
func (s *Store) View(ctx context.Context, id string) (*Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.ensureLoaded(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOfLocked(id)
	if idx < 0 || s.reports[idx].Type != TypeBeautifiedHTML {
		return nil, nil
	}

	r := &s.reports[idx]
	r.ViewCount++
	r.UpdatedAt = s.now().UTC()

	viewed := *r
	s.scheduleSyncLocked()
	return &viewed, nil
}

// ReplaceAll swaps in a client-provided collection (the sync endpoint),
// re-sorted newest first and capped, then persists. Returns the stored
// count.
func (s *Store) ReplaceAll(ctx context.Context, reports []Report) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	s.ensureLoaded(ctx)

	next := make([]Report, len(reports))
	copy(next, reports)
	sort.SliceStable(next, func(i, j int) bool {
		return next[i].CreatedAt.After(next[j].CreatedAt)
	})
	if len(next) > MaxReports {
		next = next[:MaxReports]
	}

	s.mu.Lock()
	s.reports = next
	s.scheduleSyncLocked()
	s.mu.Unlock()

	return len(next), nil
}

// Flush blocks until all scheduled mirror writes have finished. Used at
// shutdown and by tests that assert on the mirrored file.
func (s *Store) Flush() {
	s.syncWG.Wait()
}

// scheduleSyncLocked snapshots the collection and writes it to the mirror
// in the background. Callers must hold s.mu.
func (s *Store) scheduleSyncLocked() {
	snapshot := make([]Report, len(s.reports))
	copy(snapshot, s.reports)
	s.syncSeq++
	seq := s.syncSeq

	s.syncWG.Add(1)
	go func() {
		defer s.syncWG.Done()
		s.syncMu.Lock()
		defer s.syncMu.Unlock()

		// A newer snapshot may already be on disk; stale writers drop out.
		if seq <= s.syncDone {
			return
		}
		s.syncDone = seq

		ctx, cancel := context.WithTimeout(context.Background(), syncTimeout)
		defer cancel()
		if err := s.mirror.SaveAll(ctx, snapshot); err != nil {
			telemetry.Error("storage.sync_failed", map[string]any{
				"error": err.Error(),
				"count": len(snapshot),
			})
		}
	}()
}

func (s *Store) indexOfLocked(id string) int {
	for i := range s.reports {
		if s.reports[i].ID == id {
			return i
		}
	}
	return -1
}
