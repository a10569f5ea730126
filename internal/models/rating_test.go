// internal/models/rating_test.go
package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRatingThresholds(t *testing.T) {
	assert.True(t, NewRating(4.0, 10, 0).IsHighlyRated())
	assert.True(t, NewRating(4.8, 10, 0).IsHighlyRated())
	assert.False(t, NewRating(3.99, 10, 0).IsHighlyRated())

	assert.True(t, NewRating(4.0, 50, 0).IsPopular())
	assert.False(t, NewRating(4.0, 49, 0).IsPopular())
}

func TestRatingHasData(t *testing.T) {
	assert.False(t, Rating{}.HasData())
	assert.True(t, NewRating(3.2, 0, 0).HasData())
	assert.True(t, NewRating(0, 7, 0).HasData())
}

func TestRatingDisplay(t *testing.T) {
	assert.Equal(t, "4.3/5 (120 değerlendirme)", NewRating(4.3, 120, 0).Display("tr"))
	// A whole score keeps one decimal so it still reads as a score.
	assert.Equal(t, "4.0/5 (10 değerlendirme)", NewRating(4, 10, 0).Display("tr"))
	assert.Equal(t, "Puan bilgisi yok", Rating{}.Display("tr"))
	assert.Equal(t, "No rating data", Rating{}.Display("en"))
}
