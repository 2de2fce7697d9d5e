// Package directory implements student.Repository over the static directory file.
package directory

import (
	"context"
	"encoding/json"
	"os"

	"github.com/pkg/errors"

	"github.com/katakurijs/gradify/core/student"
)

// jsonRepository reads the whole directory file on every call. The file is
// read-only at request time, so there is no cache and nothing to invalidate.
type jsonRepository struct {
	path string
}

var _ student.Repository = (*jsonRepository)(nil)

func NewJSONRepository(path string) student.Repository {
	return &jsonRepository{path: path}
}

func (repo *jsonRepository) QueryAllStudents(_ context.Context) ([]student.Record, error) {
	data, err := os.ReadFile(repo.path)
	if err != nil {
		return nil, errors.Wrapf(student.ErrDataUnavailable, "reading %s: %v", repo.path, err)
	}
	var records []student.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, errors.Wrapf(student.ErrDataUnavailable, "parsing %s: %v", repo.path, err)
	}
	return records, nil
}
