package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	errs "github.com/Akachukwuu/earnquiza/internal/domain/error"
)

func TestParseAmount(t *testing.T) {
	t.Run("should parse whole amounts", func(t *testing.T) {
		cents, err := ParseAmount("100")
		assert.NoError(t, err)
		assert.Equal(t, int64(10000), cents)
	})

	t.Run("should parse one decimal place", func(t *testing.T) {
		cents, err := ParseAmount("100.5")
		assert.NoError(t, err)
		assert.Equal(t, int64(10050), cents)
	})

	t.Run("should parse two decimal places", func(t *testing.T) {
		cents, err := ParseAmount("123.45")
		assert.NoError(t, err)
		assert.Equal(t, int64(12345), cents)
	})

	t.Run("should parse amounts without a whole part", func(t *testing.T) {
		cents, err := ParseAmount(".05")
		assert.NoError(t, err)
		assert.Equal(t, int64(5), cents)
	})

	t.Run("should reject empty input", func(t *testing.T) {
		_, err := ParseAmount("  ")
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})

	t.Run("should reject negative amounts", func(t *testing.T) {
		_, err := ParseAmount("-10")
		assert.ErrorIs(t, err, errs.ErrNegativeAmount)
	})

	t.Run("should reject more than two decimal places", func(t *testing.T) {
		_, err := ParseAmount("1.234")
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})

	t.Run("should reject non-numeric input", func(t *testing.T) {
		_, err := ParseAmount("ten")
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})

	t.Run("should reject multiple decimal points", func(t *testing.T) {
		_, err := ParseAmount("1.2.3")
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})

	t.Run("should reject amounts that overflow int64", func(t *testing.T) {
		_, err := ParseAmount("92233720368547758.08")
		assert.ErrorIs(t, err, errs.ErrAmountOverflow)
	})
}

func TestFormatCents(t *testing.T) {
	assert.Equal(t, "510.00", FormatCents(51000))
	assert.Equal(t, "0.05", FormatCents(5))
	assert.Equal(t, "0.00", FormatCents(0))
	assert.Equal(t, "123.45", FormatCents(12345))
	assert.Equal(t, "-1.50", FormatCents(-150))
}

func TestMultiplyCents(t *testing.T) {
	t.Run("should multiply exactly when no rounding is needed", func(t *testing.T) {
		assert.Equal(t, int64(1350), MultiplyCents(1000, 1.35))
	})

	t.Run("should round to the nearest cent", func(t *testing.T) {
		// 999 * 1.35 = 1348.65
		assert.Equal(t, int64(1349), MultiplyCents(999, 1.35))
		// 101 * 1.35 = 136.35
		assert.Equal(t, int64(136), MultiplyCents(101, 1.35))
	})

	t.Run("should leave zero at zero", func(t *testing.T) {
		assert.Equal(t, int64(0), MultiplyCents(0, 1.35))
	})
}
