package period

import (
	"errors"
	"testing"
	"time"

	"github.com/hugohenrick/bizit/internal/domain/apperr"
	"github.com/stretchr/testify/assert"
)

func TestWindowContainsIsInclusive(t *testing.T) {
	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 31, 23, 59, 59, 0, time.UTC)
	w := Between(from, to)

	assert.True(t, w.Contains(from))
	assert.True(t, w.Contains(to))
	assert.False(t, w.Contains(from.Add(-time.Second)))
	assert.False(t, w.Contains(to.Add(time.Second)))
	assert.True(t, AllTime().Contains(time.Time{}))
}

func TestWindowValidate(t *testing.T) {
	from := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	assert.NoError(t, Window{From: &from}.Validate())
	assert.True(t, errors.Is(Between(from, from.AddDate(0, 0, -1)).Validate(), apperr.ErrValidation))
}
