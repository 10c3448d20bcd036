package entities

// TaxRegime is the closed set of Brazilian taxation categories a client can
// fall under. Each regime selects one of the four tax percentages stored in
// PricingParameters.
//
// Unknown values are tolerated by the rate calculator (they resolve to a 0%
// tax load) so that a half-migrated client record never breaks a quote.

type TaxRegime string

const (
	TaxRegimeMEI             TaxRegime = "MEI"
	TaxRegimeSimplesNacional TaxRegime = "Simples Nacional"
	TaxRegimeLucroPresumido  TaxRegime = "Lucro Presumido"
	TaxRegimeAutonomo        TaxRegime = "Autônomo"
)

// IsValid reports whether r is one of the four enumerated regimes.
func (r TaxRegime) IsValid() bool {
	switch r {
	case TaxRegimeMEI, TaxRegimeSimplesNacional, TaxRegimeLucroPresumido, TaxRegimeAutonomo:
		return true
	}
	return false
}
