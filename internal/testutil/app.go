package testutil

import (
	"bytes"
	"testing"

	"github.com/nexuslink/nlink/internal/app"
	"github.com/nexuslink/nlink/internal/domain"
)

// NewTestApp returns an application backed by an in-memory store whose
// output is collected in the returned buffer.
func NewTestApp(t *testing.T) (*domain.Application, *bytes.Buffer) {
	t.Helper()

	out := &bytes.Buffer{}
	return app.NewForTesting(out, NewTestStore(t)), out
}
