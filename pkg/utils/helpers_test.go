package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseValue(t *testing.T) {
	assert.Equal(t, 400001, ParseValue("400001"))
	assert.Equal(t, 560001.0, ParseValue("560001.0"))
	assert.Equal(t, "SBI", ParseValue(" SBI "))
	assert.Equal(t, "", ParseValue("  "))
}
