package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAverageRating(t *testing.T) {
	p := &WorkoutPlan{}
	require.Equal(t, 0.0, p.AverageRating(), "unrated plan averages to zero")

	p.Ratings = []PlanRating{{Score: 5}, {Score: 4}, {Score: 3}}
	require.Equal(t, 4.0, p.AverageRating())

	p.Ratings = append(p.Ratings, PlanRating{Score: 2})
	require.Equal(t, 3.5, p.AverageRating())
}
