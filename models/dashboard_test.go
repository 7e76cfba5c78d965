package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSafePercentChange(t *testing.T) {
	assert.Equal(t, 0.0, SafePercentChange(0, 0))
	assert.Equal(t, 100.0, SafePercentChange(5, 0))
	assert.Equal(t, 50.0, SafePercentChange(15, 10))
	assert.Equal(t, -50.0, SafePercentChange(5, 10))
	// rounded to two decimals
	assert.Equal(t, 33.33, SafePercentChange(4, 3))
}
