// Package grades defines the capability of turning a student identifier into
// a rendered grade document. The rendering itself is owned by an external
// grading service; this package only names the contract so the service can be
// swapped or mocked without touching routing code.
package grades

import (
	"context"
	"errors"
)

// DegradedFragment is served in place of a grade document whenever the
// grading service is unreachable, erroring, or unconfigured.
const DegradedFragment = `<p class="text-danger">No grades found.</p>`

// ErrUpstreamUnavailable reports that the grading service could not produce a
// document. Callers respond with DegradedFragment and a server-error status;
// the raw upstream error never reaches the end user.
var ErrUpstreamUnavailable = errors.New("grading service unavailable")

// Service fetches the pre-rendered grade HTML for an apogee identifier.
// The document is opaque: it is relayed verbatim, never parsed or validated.
type Service interface {
	FetchRenderedGrades(ctx context.Context, apogee string) (string, error)
}
