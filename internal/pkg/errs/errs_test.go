//go:build unit

package errs_test

import (
	stderrors "errors"
	"testing"

	"courtbook/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkAndIs(t *testing.T) {
	sentinel := errs.New("gateway unavailable")
	cause := stderrors.New("connection refused")

	marked := errs.Mark(cause, sentinel)
	require.Error(t, marked)

	assert.True(t, errs.Is(marked, sentinel), "Is must see the mark")
	assert.True(t, errs.Is(marked, cause), "Is must still see the cause")
	assert.False(t, stderrors.Is(marked, sentinel), "marks live outside the stdlib chain")

	wrapped := errs.Wrap(marked, "request failed")
	assert.True(t, errs.Is(wrapped, sentinel), "marks survive wrapping")
}

func TestMarkNilError(t *testing.T) {
	sentinel := errs.New("sentinel")
	assert.Equal(t, sentinel, errs.Mark(nil, sentinel))
}

func TestWrapNil(t *testing.T) {
	assert.NoError(t, errs.Wrap(nil, "context"))
}
