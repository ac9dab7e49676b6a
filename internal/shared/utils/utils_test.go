package utils

import (
	"testing"

	"github.com/hibiken/asynq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnmarshalTask(t *testing.T) {
	var dest struct {
		Key string `json:"key"`
	}

	require.NoError(t, UnmarshalTask(asynq.NewTask("x", []byte(`{"key":"cart:user:1"}`)), &dest))
	assert.Equal(t, "cart:user:1", dest.Key)

	assert.Error(t, UnmarshalTask(asynq.NewTask("x", nil), &dest))
	assert.Error(t, UnmarshalTask(asynq.NewTask("x", []byte("{")), &dest))
}

func TestDigitsOnly(t *testing.T) {
	assert.Equal(t, "01310100", DigitsOnly("01310-100"))
	assert.Equal(t, "", DigitsOnly("abc"))
	assert.Equal(t, "123", DigitsOnly(" 1.2/3 "))
}

func TestParsePositiveInt(t *testing.T) {
	n, err := ParsePositiveInt("4")
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	for _, bad := range []string{"0", "-2", "x", ""} {
		_, err := ParsePositiveInt(bad)
		assert.Error(t, err, bad)
	}
}

func TestApplyDiscount(t *testing.T) {
	tests := []struct {
		price   string
		percent int
		want    string
	}{
		{"89.90", 15, "76.42"},
		{"89.90", 10, "80.91"},
		{"94.90", 12, "83.51"},
		{"99.90", 5, "94.91"},
		{"109.90", 0, "109.9"},
	}

	for _, tt := range tests {
		got := ApplyDiscount(decimal.RequireFromString(tt.price), tt.percent)
		assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "%s -%d%% = %s", tt.price, tt.percent, got)
	}
}
