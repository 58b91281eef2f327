package pricing

import (
	"testing"

	"atelier/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestComputePrice_ConfiguredMultipliers(t *testing.T) {
	cfg := Config{
		"base_price_inr":     "5000",
		"mult_size_a3":       "1.5",
		"mult_medium_pencil": "1.0",
		"mult_diff_hard":     "1.8",
	}
	sel := model.Selection{Size: model.SizeA3, Medium: model.MediumPencil, Difficulty: model.DifficultyHard, Deadline: model.DeadlineNormal}

	assert.Equal(t, int64(13500), ComputePrice(sel, cfg))
}

func TestComputePrice_Deterministic(t *testing.T) {
	cfg := Config{"base_price_inr": "4321", "mult_size_a2": "1.37", "mult_medium_charcoal": "1.11", "mult_diff_extreme": "2.05"}
	sel := model.Selection{Size: model.SizeA2, Medium: model.MediumCharcoal, Difficulty: model.DifficultyExtreme, Deadline: model.DeadlineExpress}

	first := ComputePrice(sel, cfg)
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, ComputePrice(sel, cfg))
	}
}

func TestComputePrice_ExpressFee(t *testing.T) {
	cfg := Config{"base_price_inr": "1000", "mult_diff_easy": "1", "fee_express_inr": "750"}
	sel := model.Selection{Size: model.SizeA4, Medium: model.MediumDigital, Difficulty: model.DifficultyEasy, Deadline: model.DeadlineExpress}

	assert.Equal(t, int64(1750), ComputePrice(sel, cfg))
}

func TestComputePrice_EmptyConfigUsesDefaults(t *testing.T) {
	sel := model.Selection{Size: model.SizeCustom, Medium: model.MediumPencil, Difficulty: model.DifficultyMedium, Deadline: model.DeadlineExpress}

	// 5000 × 1 × 1 × 1.3 + 2000
	assert.Equal(t, int64(8500), ComputePrice(sel, Config{}))
	assert.Equal(t, int64(8500), ComputePrice(sel, nil))
}

func TestComputePrice_GarbageValueFallsBack(t *testing.T) {
	cfg := Config{"base_price_inr": "abc", "mult_size_a4": "-2", "mult_diff_easy": "1"}
	sel := model.Selection{Size: model.SizeA4, Medium: model.MediumPencil, Difficulty: model.DifficultyEasy, Deadline: model.DeadlineNormal}

	assert.Equal(t, int64(5000), ComputePrice(sel, cfg))
}

func TestComputePrice_RoundsHalfUp(t *testing.T) {
	cfg := Config{"base_price_inr": "1001", "mult_diff_easy": "1.5"}
	sel := model.Selection{Size: model.SizeA4, Medium: model.MediumPencil, Difficulty: model.DifficultyEasy, Deadline: model.DeadlineNormal}

	// 1001 × 1.5 = 1501.5
	assert.Equal(t, int64(1502), ComputePrice(sel, cfg))
}

func TestDiscount(t *testing.T) {
	assert.Equal(t, int64(1000), Discount(10000, 10))
	assert.Equal(t, int64(125), Discount(1245, 10))
	assert.Equal(t, int64(0), Discount(1000, 0))
	assert.Equal(t, int64(500), Discount(500, 150))
}
