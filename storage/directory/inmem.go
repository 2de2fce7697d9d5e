package directory

import (
	"context"

	"github.com/katakurijs/gradify/core/student"
)

// inmemRepository serves a fixed record slice; test double for the JSON file.
type inmemRepository struct {
	records []student.Record
	err     error
}

var _ student.Repository = (*inmemRepository)(nil)

func NewInMemRepository(records []student.Record) student.Repository {
	return &inmemRepository{records: records}
}

// NewFailingRepository always returns err; exercises the DataUnavailable path.
func NewFailingRepository(err error) student.Repository {
	return &inmemRepository{err: err}
}

func (repo *inmemRepository) QueryAllStudents(_ context.Context) ([]student.Record, error) {
	if repo.err != nil {
		return nil, repo.err
	}
	records := make([]student.Record, len(repo.records))
	copy(records, repo.records)
	return records, nil
}
