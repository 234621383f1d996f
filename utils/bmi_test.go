package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBMI(t *testing.T) {
	bmi, category, err := BMI(168, 71.5)
	require.NoError(t, err)
	require.InDelta(t, 25.33, bmi, 0.01)
	require.Equal(t, "Overweight", category)

	bmi, category, err = BMI(180, 70)
	require.NoError(t, err)
	require.InDelta(t, 21.6, bmi, 0.01)
	require.Equal(t, "Normal weight", category)

	_, category, err = BMI(170, 50)
	require.NoError(t, err)
	require.Equal(t, "Underweight", category)
}

func TestBMIRejectsImplausibleInput(t *testing.T) {
	for _, tc := range [][2]float64{
		{0, 70},
		{170, 0},
		{-170, 70},
		{300, 70},
		{170, 500},
		{40, 70},
	} {
		_, _, err := BMI(tc[0], tc[1])
		require.Error(t, err, "height=%v weight=%v", tc[0], tc[1])
	}
}
