package pricing

import (
	"errors"

	"github.com/shopspring/decimal"

	"consultoria_xpto/internal/domain/entities"
)

// ErrNonPositiveProductiveHours is returned by TechnicalHour when the
// parameter set has no productive hours to dilute costs over. Returning an
// error (instead of the silent 0 some legacy spreadsheets produced) lets the
// application layer tell the user their parameters are not usable.
var ErrNonPositiveProductiveHours = errors.New("productive hours must be greater than zero")

var (
	oneHundred = decimal.NewFromInt(100)
	one        = decimal.NewFromInt(1)
)

// Volume discount tier boundaries. Quantities of 1 to 5 get no discount;
// both ends of the first two bands are inclusive.
const (
	tier1Min = 6
	tier1Max = 15
	tier2Min = 16
	tier2Max = 30
)

// TechnicalHour computes the base hourly rate: monthly fixed costs plus
// desired pro-labore diluted over the productive hours of a month. No
// margin or tax loading is applied here.
func TechnicalHour(fixedCosts, proLabor, productiveHours decimal.Decimal) (decimal.Decimal, error) {
	if productiveHours.Sign() <= 0 {
		return decimal.Zero, ErrNonPositiveProductiveHours
	}
	return fixedCosts.Add(proLabor).Div(productiveHours), nil
}

// WithMargin loads a rate with the unexpected-costs margin percent.
func WithMargin(rate, marginPercent decimal.Decimal) decimal.Decimal {
	return rate.Mul(one.Add(marginPercent.Div(oneHundred)))
}

// WithTax loads a rate with the tax percent of the client's regime.
func WithTax(rate, taxPercent decimal.Decimal) decimal.Decimal {
	return rate.Mul(one.Add(taxPercent.Div(oneHundred)))
}

// TaxRateForRegime resolves the tax percent for a regime from the tenant's
// parameters. An unknown regime resolves to 0%: that is a defined fallback
// for records predating the regime enum, not an error.
func TaxRateForRegime(regime entities.TaxRegime, params entities.PricingParameters) decimal.Decimal {
	switch regime {
	case entities.TaxRegimeMEI:
		return params.TaxMEIPercent
	case entities.TaxRegimeSimplesNacional:
		return params.TaxSimplesNacionalPercent
	case entities.TaxRegimeLucroPresumido:
		return params.TaxLucroPresumidoPercent
	case entities.TaxRegimeAutonomo:
		return params.TaxAutonomoPercent
	default:
		return decimal.Zero
	}
}

// VolumeDiscountPercent resolves the discount percent for a quantity from
// the tenant's tier configuration. Band membership:
//
//	[6, 15]  -> first tier
//	[16, 30] -> second tier
//	(30, ∞)  -> third tier
//	otherwise 0%
func VolumeDiscountPercent(quantity int, params entities.PricingParameters) decimal.Decimal {
	switch {
	case quantity >= tier1Min && quantity <= tier1Max:
		return params.VolumeDiscount6To15Percent
	case quantity >= tier2Min && quantity <= tier2Max:
		return params.VolumeDiscount16To30Percent
	case quantity > tier2Max:
		return params.VolumeDiscount30PlusPercent
	default:
		return decimal.Zero
	}
}

// ItemInput carries the raw inputs of a proposal item total.
type ItemInput struct {
	BasePrice      decimal.Decimal
	EstimatedHours decimal.Decimal
	Quantity       int

	PersonalizationPercent decimal.Decimal
	RiskPercent            decimal.Decimal
	SeniorityPercent       decimal.Decimal
	VolumeDiscountPercent  decimal.Decimal
}

// ItemTotal computes the full value of a proposal item:
// base price × hours × quantity, then the three percentage adjustments
// (personalization, risk, seniority — always in that order, so that any
// per-step rounding introduced later stays deterministic), then the volume
// discount. No intermediate rounding; callers round at storage time.
//
// The result may be negative when an adjustment below -100% is supplied;
// the engine does not reject that, callers log it as a data-quality warning.
func ItemTotal(in ItemInput) decimal.Decimal {
	value := in.BasePrice.Mul(in.EstimatedHours).Mul(decimal.NewFromInt(int64(in.Quantity)))
	value = value.Mul(one.Add(in.PersonalizationPercent.Div(oneHundred)))
	value = value.Mul(one.Add(in.RiskPercent.Div(oneHundred)))
	value = value.Mul(one.Add(in.SeniorityPercent.Div(oneHundred)))
	value = value.Mul(one.Sub(in.VolumeDiscountPercent.Div(oneHundred)))
	return value
}

// ProposalTotal computes the client-facing proposal figure from the sum of
// stored item totals. The general discount is a percentage of the items
// subtotal; the displacement fee is added after the discount and is never
// discounted itself.
func ProposalTotal(itemsSum, discountGeneralPercent, displacementFee decimal.Decimal) decimal.Decimal {
	return itemsSum.Mul(one.Sub(discountGeneralPercent.Div(oneHundred))).Add(displacementFee)
}
