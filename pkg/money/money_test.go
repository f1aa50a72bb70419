package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromMajor(t *testing.T) {
	assert.Equal(t, Money(5000), FromMajor(50))
	assert.Equal(t, Money(0), FromMajor(0))
	assert.Equal(t, Money(-2500), FromMajor(-25))
}

func TestMoney_MulInt(t *testing.T) {
	// Почасовая ставка 50.00 за 2 часа
	assert.Equal(t, Money(10000), Money(5000).MulInt(2))
	assert.Equal(t, Money(20000), Money(5000).MulInt(4))
	assert.Equal(t, Money(0), Money(5000).MulInt(0))
}

func TestMoney_Add(t *testing.T) {
	assert.Equal(t, Money(7500), Money(5000).Add(Money(2500)))
}

func TestMoney_Minor(t *testing.T) {
	assert.Equal(t, int64(12345), Money(12345).Minor())
}

func TestMoney_String(t *testing.T) {
	tests := []struct {
		amount Money
		want   string
	}{
		{Money(5000), "50.00"},
		{Money(12050), "120.50"},
		{Money(5), "0.05"},
		{Money(0), "0.00"},
		{Money(-2500), "-25.00"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.amount.String())
	}
}
