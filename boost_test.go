package solrq

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatBoost(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{42, "42.0"},
		{1.5, "1.5"},
		{2.25, "2.25"},
		{100, "100.0"},
		{9999999, "9999999.0"},
		{1e7, "1.0E7"},
		{123456789, "1.23456789E8"},
		{0, "0.0"},
		{0.001, "0.001"},
		{0.0001, "1.0E-4"},
		{math.Inf(1), "Infinity"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatBoost(tt.in))
	}
}
