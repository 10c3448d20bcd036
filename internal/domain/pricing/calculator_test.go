package pricing

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"consultoria_xpto/internal/domain/entities"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestTechnicalHour(t *testing.T) {
	t.Run("reference scenario", func(t *testing.T) {
		got, err := TechnicalHour(dec("5000"), dec("7000"), dec("160"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.Equal(dec("75")) {
			t.Fatalf("expected 75, got %s", got)
		}
	})

	t.Run("non positive hours", func(t *testing.T) {
		for _, hours := range []string{"0", "-1"} {
			_, err := TechnicalHour(dec("5000"), dec("7000"), dec(hours))
			if !errors.Is(err, ErrNonPositiveProductiveHours) {
				t.Fatalf("hours=%s: expected ErrNonPositiveProductiveHours, got %v", hours, err)
			}
		}
	})

	t.Run("monotonic in costs and hours", func(t *testing.T) {
		base, _ := TechnicalHour(dec("5000"), dec("7000"), dec("160"))

		higherCosts, _ := TechnicalHour(dec("6000"), dec("7000"), dec("160"))
		if !higherCosts.GreaterThan(base) {
			t.Fatalf("expected rate to grow with fixed costs: %s <= %s", higherCosts, base)
		}

		higherLabor, _ := TechnicalHour(dec("5000"), dec("8000"), dec("160"))
		if !higherLabor.GreaterThan(base) {
			t.Fatalf("expected rate to grow with pro-labore: %s <= %s", higherLabor, base)
		}

		moreHours, _ := TechnicalHour(dec("5000"), dec("7000"), dec("200"))
		if !moreHours.LessThan(base) {
			t.Fatalf("expected rate to shrink with more hours: %s >= %s", moreHours, base)
		}
	})
}

func TestWithTax(t *testing.T) {
	rate, err := TechnicalHour(dec("5000"), dec("7000"), dec("160"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := WithTax(rate, dec("14.5"))
	if !got.Equal(dec("85.875")) {
		t.Fatalf("expected 85.875, got %s", got)
	}
}

func TestWithMargin(t *testing.T) {
	got := WithMargin(dec("100"), dec("10"))
	if !got.Equal(dec("110")) {
		t.Fatalf("expected 110, got %s", got)
	}
	// Zero margin is the identity.
	if got := WithMargin(dec("75"), decimal.Zero); !got.Equal(dec("75")) {
		t.Fatalf("expected 75, got %s", got)
	}
}

func TestTaxRateForRegime(t *testing.T) {
	params := entities.PricingParameters{
		TaxMEIPercent:             dec("6"),
		TaxSimplesNacionalPercent: dec("14.5"),
		TaxLucroPresumidoPercent:  dec("16.33"),
		TaxAutonomoPercent:        dec("27.5"),
	}

	cases := []struct {
		regime entities.TaxRegime
		want   string
	}{
		{entities.TaxRegimeMEI, "6"},
		{entities.TaxRegimeSimplesNacional, "14.5"},
		{entities.TaxRegimeLucroPresumido, "16.33"},
		{entities.TaxRegimeAutonomo, "27.5"},
		{entities.TaxRegime("Cooperativa"), "0"},
		{entities.TaxRegime(""), "0"},
	}
	for _, tc := range cases {
		if got := TaxRateForRegime(tc.regime, params); !got.Equal(dec(tc.want)) {
			t.Fatalf("regime %q: expected %s, got %s", tc.regime, tc.want, got)
		}
	}
}

func TestVolumeDiscountPercent_Boundaries(t *testing.T) {
	params := entities.PricingParameters{
		VolumeDiscount6To15Percent:  dec("5"),
		VolumeDiscount16To30Percent: dec("10"),
		VolumeDiscount30PlusPercent: dec("15"),
	}

	cases := []struct {
		quantity int
		want     string
	}{
		{0, "0"},
		{1, "0"},
		{5, "0"},
		{6, "5"},
		{15, "5"},
		{16, "10"},
		{30, "10"},
		{31, "15"},
		{100, "15"},
	}
	for _, tc := range cases {
		if got := VolumeDiscountPercent(tc.quantity, params); !got.Equal(dec(tc.want)) {
			t.Fatalf("quantity %d: expected %s%%, got %s%%", tc.quantity, tc.want, got)
		}
	}
}

func TestItemTotal(t *testing.T) {
	t.Run("end to end scenario", func(t *testing.T) {
		// 85.875 * 10h * 20 = 17175; +10% +15% +30% ≈ 28235.09; -10% ≈ 25411.58.
		got := ItemTotal(ItemInput{
			BasePrice:              dec("85.875"),
			EstimatedHours:         dec("10"),
			Quantity:               20,
			PersonalizationPercent: dec("10"),
			RiskPercent:            dec("15"),
			SeniorityPercent:       dec("30"),
			VolumeDiscountPercent:  dec("10"),
		})
		if rounded := got.Round(2); !rounded.Equal(dec("25411.58")) {
			t.Fatalf("expected 25411.58, got %s", rounded)
		}
	})

	t.Run("no adjustments", func(t *testing.T) {
		got := ItemTotal(ItemInput{
			BasePrice:      dec("85.875"),
			EstimatedHours: dec("10"),
			Quantity:       20,
		})
		if !got.Equal(dec("17175")) {
			t.Fatalf("expected 17175, got %s", got)
		}
	})

	t.Run("adjustment order is irrelevant", func(t *testing.T) {
		base := ItemInput{
			BasePrice:      dec("85.875"),
			EstimatedHours: dec("10"),
			Quantity:       20,
		}

		perms := [][3]string{
			{"10", "15", "30"},
			{"10", "30", "15"},
			{"15", "10", "30"},
			{"15", "30", "10"},
			{"30", "10", "15"},
			{"30", "15", "10"},
		}
		first := decimal.Decimal{}
		for i, p := range perms {
			in := base
			in.PersonalizationPercent = dec(p[0])
			in.RiskPercent = dec(p[1])
			in.SeniorityPercent = dec(p[2])
			got := ItemTotal(in).Round(2)
			if i == 0 {
				first = got
				continue
			}
			if !got.Equal(first) {
				t.Fatalf("permutation %v: expected %s, got %s", p, first, got)
			}
		}
	})

	t.Run("negative result allowed", func(t *testing.T) {
		got := ItemTotal(ItemInput{
			BasePrice:              dec("100"),
			EstimatedHours:         dec("1"),
			Quantity:               1,
			PersonalizationPercent: dec("-150"),
		})
		if got.Sign() >= 0 {
			t.Fatalf("expected negative total, got %s", got)
		}
	})
}

func TestProposalTotal(t *testing.T) {
	t.Run("aggregation scenario", func(t *testing.T) {
		// (1000 + 2500) * 0.90 + 200 = 3350.
		got := ProposalTotal(dec("3500.00"), dec("10"), dec("200.00"))
		if !got.Equal(dec("3350")) {
			t.Fatalf("expected 3350, got %s", got)
		}
	})

	t.Run("empty proposal keeps displacement fee", func(t *testing.T) {
		got := ProposalTotal(decimal.Zero, dec("10"), dec("200.00"))
		if !got.Equal(dec("200")) {
			t.Fatalf("expected 200, got %s", got)
		}
	})

	t.Run("no discount no fee", func(t *testing.T) {
		got := ProposalTotal(dec("1234.56"), decimal.Zero, decimal.Zero)
		if !got.Equal(dec("1234.56")) {
			t.Fatalf("expected 1234.56, got %s", got)
		}
	})
}
