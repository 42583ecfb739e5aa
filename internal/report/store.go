package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sync"

	"github.com/bodyinsight/booking-platform/pkg/logging"
)

var (
	// ErrNotFound is returned when no report exists for an id.
	ErrNotFound = errors.New("report not found")

	// ErrBadID is returned for ids that could escape the reports directory.
	ErrBadID = errors.New("invalid report id")
)

var reportIDRe = regexp.MustCompile(`^[A-Za-z0-9-]+$`)

// Store loads reports from a directory of JSON files, one file per report id.
// Reports are validated once on first load and cached; they never change
// after a scan is finalized.
type Store struct {
	dir    string
	logger *logging.Logger

	mu    sync.RWMutex
	cache map[string]*Report
}

// NewStore creates a file-backed report store.
func NewStore(dir string, logger *logging.Logger) *Store {
	if logger == nil {
		logger = logging.Default()
	}
	return &Store{
		dir:    dir,
		logger: logger.Component("report-store"),
		cache:  make(map[string]*Report),
	}
}

// Get returns the report for id, loading and validating it on first access.
func (s *Store) Get(id string) (*Report, error) {
	if !reportIDRe.MatchString(id) {
		return nil, ErrBadID
	}

	s.mu.RLock()
	if r, ok := s.cache[id]; ok {
		s.mu.RUnlock()
		return r, nil
	}
	s.mu.RUnlock()

	path := filepath.Join(s.dir, id+".json")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("report: read %s: %w", path, err)
	}

	var r Report
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("report: parse %s: %w", path, err)
	}
	if r.ID == "" {
		r.ID = id
	}
	if err := r.Validate(); err != nil {
		return nil, fmt.Errorf("report: validate %s: %w", id, err)
	}

	s.mu.Lock()
	s.cache[id] = &r
	s.mu.Unlock()

	s.logger.Info("report loaded", "id", id, "scans", len(r.Trends.Dates))
	return &r, nil
}
