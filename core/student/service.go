package student

import (
	"context"
	"errors"
	"strings"
)

var (
	// ErrDataUnavailable reports that the directory's backing source is
	// missing or malformed. It must surface as a server error, never as an
	// empty result.
	ErrDataUnavailable = errors.New("student directory unavailable")
)

type (
	Repository interface {
		// QueryAllStudents returns the full directory in source order.
		// Implementations wrap unreadable sources in ErrDataUnavailable.
		QueryAllStudents(ctx context.Context) ([]Record, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Search returns all records whose name contains query as a case-insensitive
// substring, in source order. An empty query matches every record; every name
// contains the empty substring and the search page never issues one, so the
// original behavior is kept.
func (svc *Service) Search(ctx context.Context, query string) ([]Record, error) {
	records, err := svc.repo.QueryAllStudents(ctx)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(query)
	results := make([]Record, 0, len(records))
	for _, rec := range records {
		if strings.Contains(strings.ToLower(rec.Name), q) {
			results = append(results, rec)
		}
	}
	return results, nil
}
