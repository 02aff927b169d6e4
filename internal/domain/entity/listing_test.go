package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDisplayPrice(t *testing.T) {
	assert.Equal(t, "€150000", FormatDisplayPrice("150000", PriceTypeSale))
	assert.Equal(t, "€1000/month", FormatDisplayPrice("1000", PriceTypeRent))
}

func TestParseDisplayPrice(t *testing.T) {
	assert.Equal(t, "150000", ParseDisplayPrice("€150000"))
	assert.Equal(t, "1000", ParseDisplayPrice("€1000/month"))
	assert.Equal(t, "150000", ParseDisplayPrice("€150,000"))
	assert.Equal(t, "2500", ParseDisplayPrice("2500"))
}

func TestNewIDMonotonic(t *testing.T) {
	a := NewID()
	b := NewID()
	c := NewID()
	assert.Less(t, a, b)
	assert.Less(t, b, c)
}
