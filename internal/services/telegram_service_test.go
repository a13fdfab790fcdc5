package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "15,000 NGN", FormatPrice(15000, ""))
	assert.Equal(t, "1,250,000 NGN", FormatPrice(1250000, "NGN"))
	assert.Equal(t, "500 USD", FormatPrice(500.75, "USD"))
	assert.Equal(t, "0 NGN", FormatPrice(0, ""))
}
