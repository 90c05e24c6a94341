package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiscountPercent(t *testing.T) {
	// 49 -> 29 is 40.8%, shown as 41% on the badge.
	original := 49.0
	p := Project{Price: 29, OriginalPrice: &original}
	pct, ok := p.DiscountPercent()
	assert.True(t, ok)
	assert.Equal(t, 41, pct)

	// 45 -> 35 is 22.2%, shown as 22%.
	original = 45.0
	p = Project{Price: 35, OriginalPrice: &original}
	pct, ok = p.DiscountPercent()
	assert.True(t, ok)
	assert.Equal(t, 22, pct)
}

func TestDiscountPercentSuppressed(t *testing.T) {
	// No original price recorded.
	p := Project{Price: 29}
	_, ok := p.DiscountPercent()
	assert.False(t, ok)

	// Original price below the sale price must not produce a badge.
	lower := 20.0
	p = Project{Price: 29, OriginalPrice: &lower}
	_, ok = p.DiscountPercent()
	assert.False(t, ok)

	// Equal prices are not a discount either.
	same := 29.0
	p = Project{Price: 29, OriginalPrice: &same}
	_, ok = p.DiscountPercent()
	assert.False(t, ok)
}

func TestOptionalAccessors(t *testing.T) {
	p := Project{}
	assert.Zero(t, p.RatingValue())
	assert.Zero(t, p.LikeCount())
	assert.True(t, p.AddedAt().IsZero())

	assert.False(t, p.HasTag("React"))
	p.TechStack = []string{"React", "Node.js"}
	assert.True(t, p.HasTag("React"))
	assert.False(t, p.HasTag("react"))
}

func TestTransactionAmountValue(t *testing.T) {
	assert.Equal(t, 49.99, Transaction{Amount: "49.99"}.AmountValue())
	assert.Zero(t, Transaction{Amount: "not-a-number"}.AmountValue())
	assert.Zero(t, Transaction{}.AmountValue())
}
