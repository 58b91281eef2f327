package pricing

import (
	"strings"

	"atelier/internal/model"

	"github.com/shopspring/decimal"
)

// Ключи таблицы настроек.
const (
	KeyBasePrice  = "base_price_inr"
	KeyExpressFee = "fee_express_inr"

	sizePrefix       = "mult_size_"
	mediumPrefix     = "mult_medium_"
	difficultyPrefix = "mult_diff_"
)

var (
	defaultBasePrice  = decimal.NewFromInt(5000)
	defaultExpressFee = decimal.NewFromInt(2000)
	defaultMultiplier = decimal.NewFromInt(1)
	// Для сложности исторически действует повышенный коэффициент.
	defaultDifficulty = decimal.RequireFromString("1.3")
)

// Config - снимок таблицы настроек ценообразования (ключ -> значение).
type Config map[string]string

// SizeKey, MediumKey и DifficultyKey возвращают ключ множителя для значения перечисления.
func SizeKey(s model.Size) string             { return sizePrefix + strings.ToLower(string(s)) }
func MediumKey(m model.Medium) string         { return mediumPrefix + strings.ToLower(string(m)) }
func DifficultyKey(d model.Difficulty) string { return difficultyPrefix + strings.ToLower(string(d)) }

// ComputePrice рассчитывает предварительную цену заказной работы:
// round(base × size × medium × difficulty) + срочность.
// Отсутствующие или нечитаемые ключи заменяются значениями по умолчанию.
func ComputePrice(sel model.Selection, cfg Config) int64 {
	price := cfg.value(KeyBasePrice, defaultBasePrice).
		Mul(cfg.value(SizeKey(sel.Size), defaultMultiplier)).
		Mul(cfg.value(MediumKey(sel.Medium), defaultMultiplier)).
		Mul(cfg.value(DifficultyKey(sel.Difficulty), defaultDifficulty)).
		Round(0)

	if sel.Deadline == model.DeadlineExpress {
		price = price.Add(cfg.value(KeyExpressFee, defaultExpressFee).Round(0))
	}
	return price.IntPart()
}

func (c Config) value(key string, fallback decimal.Decimal) decimal.Decimal {
	raw, ok := c[key]
	if !ok {
		return fallback
	}
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil || d.IsNegative() {
		return fallback
	}
	return d
}

// Discount вычисляет скидку в процентах от суммы с округлением до целого.
func Discount(total, percentOff int64) int64 {
	if percentOff <= 0 || total <= 0 {
		return 0
	}
	if percentOff > 100 {
		percentOff = 100
	}
	return decimal.NewFromInt(total).
		Mul(decimal.NewFromInt(percentOff)).
		Div(decimal.NewFromInt(100)).
		Round(0).
		IntPart()
}
