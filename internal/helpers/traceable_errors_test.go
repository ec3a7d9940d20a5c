package helpers

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNil(t *testing.T) {
	var err error
	assert.True(t, IsNil(err))

	var traceableErr Error = NilError
	assert.True(t, IsNil(traceableErr))

	assert.True(t, IsNil(Wrap(nil)))
	assert.False(t, IsNil(Errorf("boom")))
}

var errSentinel = errors.New("sentinel")

func TestErrorsIsSeesThroughTrace(t *testing.T) {
	err := Errorf("%w: player %v", errSentinel, 3)
	assert.True(t, errors.Is(err, errSentinel))
	assert.Equal(t, "sentinel: player 3", err.Error())

	wrapped := Wrap(fmt.Errorf("outer: %w", errSentinel))
	assert.True(t, errors.Is(wrapped, errSentinel))

	assert.False(t, errors.Is(Errorf("unrelated"), errSentinel))
}

func TestJoin(t *testing.T) {
	assert.True(t, IsNil(Join(NilError, NilError)))

	a := Errorf("a")
	assert.Equal(t, a, Join(NilError, a))

	joined := Join(a, Errorf("%w", errSentinel))
	assert.Equal(t, 2, joined.NumErrors())
	assert.True(t, errors.Is(joined, errSentinel))
}

func TestWrapKeepsTraceableErrors(t *testing.T) {
	err := Errorf("%w", errSentinel)
	assert.Equal(t, err, Wrap(err))
}
