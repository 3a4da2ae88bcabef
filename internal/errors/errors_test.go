package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	apperrors "github.com/KirkDiggler/yahtzee-scorer/internal/errors"
	"github.com/stretchr/testify/assert"
)

func TestWrap_PreservesCodeAndMeta(t *testing.T) {
	base := apperrors.AlreadyExistsf("category %s already scored", "Chance").
		WithMeta("category", "Chance")

	wrapped := apperrors.Wrap(base, "failed to assign score")

	assert.True(t, apperrors.IsAlreadyExists(wrapped))
	assert.Equal(t, "Chance", apperrors.GetMeta(wrapped)["category"])
	assert.Equal(t, "failed to assign score: category Chance already scored", wrapped.Error())
	assert.True(t, stderrors.Is(wrapped, base))
}

func TestWrap_ForeignErrorIsUnknown(t *testing.T) {
	wrapped := apperrors.Wrap(stderrors.New("boom"), "redis")

	assert.Equal(t, apperrors.CodeUnknown, apperrors.GetCode(wrapped))
	assert.Nil(t, apperrors.Wrap(nil, "nothing"))
}

func TestWrapWithCode(t *testing.T) {
	err := apperrors.WrapWithCode(stderrors.New("decode"), apperrors.CodeInternal, "bad card data")

	assert.True(t, apperrors.IsInternal(err))
	assert.False(t, apperrors.IsNotFound(err))
}

func TestIs_ThroughFmtWrapping(t *testing.T) {
	err := fmt.Errorf("service: %w", apperrors.NotFoundf("score card %s not found", "abc"))

	assert.True(t, apperrors.IsNotFound(err))
	assert.Equal(t, apperrors.CodeNotFound, apperrors.GetCode(err))
	assert.Nil(t, apperrors.GetMeta(stderrors.New("plain")))
}

func TestInvalidArgument(t *testing.T) {
	assert.True(t, apperrors.IsInvalidArgument(apperrors.InvalidArgument("face must be 1-6")))
	assert.True(t, apperrors.IsInvalidArgument(apperrors.InvalidArgumentf("n must be between %d and %d", 1, 5)))
}
