package ladder

import "fmt"

// Fees are the one-off costs of a purchase, on top of the stamp duty.
type Fees struct {
	MortgageArrangement Amount
	Legal               Amount // legal and conveyancing
	Survey              Amount
	Moving              Amount // moving on your own
	ProfessionalMoving  Amount // moving with professional help
}

// Assumptions are the market and lifestyle inputs of the model.
//
// Assumptions is a plain value; DefaultAssumptions returns a fresh copy on
// each call so that independent runs never share state.
type Assumptions struct {
	Fees Fees

	// Purchases.
	FlatValue           Amount // value of a generated flat
	HouseValue          Amount // value of a generated house
	TermYears           int    // mortgage term of a generated property
	StandardRate        Ratio  // annual rate for regular deposits
	LowDepositRate      Ratio  // annual rate when the deposit is at most LowDepositThreshold
	LowDepositThreshold Ratio
	ProfessionalMove    bool // hire movers for every purchase

	// Running costs.
	MaintenanceRate Ratio  // yearly maintenance, as a share of the value
	ServiceCharge   Amount // yearly service charge of flats
	Rent            Amount // monthly rent paid before owning a first property

	// Lettings.
	FlatRent          Amount // monthly rent received for a flat
	HouseRent         Amount // monthly rent received for a house
	ManagementRate    Ratio  // letting agent share of the rent
	BuyToLetTermYears int

	// MaxMonths bounds the length of a strategy run.
	MaxMonths int
}

// DefaultAssumptions returns the reference assumptions: 2025 UK prices for a
// £150k flat and a £220k house over 40 years.
func DefaultAssumptions() Assumptions {
	return Assumptions{
		Fees: Fees{
			MortgageArrangement: A(500),
			Legal:               A(1200),
			Survey:              A(500),
			Moving:              A(100),
			ProfessionalMoving:  A(200),
		},
		FlatValue:           A(150000),
		HouseValue:          A(220000),
		TermYears:           40,
		StandardRate:        R(0.05),
		LowDepositRate:      R(0.06),
		LowDepositThreshold: R(0.05),
		ProfessionalMove:    true,
		MaintenanceRate:     R(0.01),
		ServiceCharge:       A(2400),
		Rent:                A(1000),
		FlatRent:            A(1100),
		HouseRent:           A(1200),
		ManagementRate:      R(0.12),
		BuyToLetTermYears:   25,
		MaxMonths:           1200,
	}
}

// Validate checks that the assumptions cannot produce degenerate properties.
func (a Assumptions) Validate() error {
	check := func(name string, v Amount) error {
		if v.IsNegative() {
			return fmt.Errorf("%w: %s must not be negative, got %s", ErrInvalidConfiguration, name, v)
		}
		return nil
	}
	for name, v := range map[string]Amount{
		"mortgage arrangement fee": a.Fees.MortgageArrangement,
		"legal fee":                a.Fees.Legal,
		"survey fee":               a.Fees.Survey,
		"moving cost":              a.Fees.Moving,
		"professional moving cost": a.Fees.ProfessionalMoving,
		"service charge":           a.ServiceCharge,
		"rent":                     a.Rent,
		"flat rent":                a.FlatRent,
		"house rent":               a.HouseRent,
	} {
		if err := check(name, v); err != nil {
			return err
		}
	}
	switch {
	case !a.FlatValue.IsPositive() || !a.HouseValue.IsPositive():
		return fmt.Errorf("%w: property values must be positive, got flat %s house %s", ErrInvalidConfiguration, a.FlatValue, a.HouseValue)
	case a.TermYears <= 0 || a.BuyToLetTermYears <= 0:
		return fmt.Errorf("%w: mortgage terms must be positive", ErrInvalidConfiguration)
	case a.StandardRate.IsNegative() || a.LowDepositRate.IsNegative():
		return fmt.Errorf("%w: negative interest rate", ErrInvalidConfiguration)
	case a.MaintenanceRate.IsNegative():
		return fmt.Errorf("%w: negative maintenance rate %s", ErrInvalidConfiguration, a.MaintenanceRate)
	case !a.ManagementRate.Between(zeroRatio, oneRatio):
		return fmt.Errorf("%w: management rate %s outside [0%%, 100%%]", ErrInvalidConfiguration, a.ManagementRate)
	case a.MaxMonths <= 0:
		return fmt.Errorf("%w: max months must be positive, got %d", ErrInvalidConfiguration, a.MaxMonths)
	}
	return nil
}

// valueOf returns the preset value of a kind of property.
func (a Assumptions) valueOf(kind Kind) Amount {
	if kind == Flat {
		return a.FlatValue
	}
	return a.HouseValue
}

// rateFor returns the interest rate offered for a deposit share.
func (a Assumptions) rateFor(deposit Ratio) Ratio {
	if deposit.LessThanOrEqual(a.LowDepositThreshold) {
		return a.LowDepositRate
	}
	return a.StandardRate
}

// NewPropertyOf returns a freshly generated residential property of the given
// kind, bought with the given deposit share.
func (a Assumptions) NewPropertyOf(kind Kind, deposit Ratio) (Property, error) {
	return NewProperty(a.valueOf(kind), kind, false, Terms{
		TermYears:    a.TermYears,
		Deposit:      deposit,
		InterestRate: a.rateFor(deposit),
	})
}

// BuyToLetOf returns a freshly generated buy-to-let property of the given kind.
func (a Assumptions) BuyToLetOf(kind Kind) (Property, error) {
	return NewProperty(a.valueOf(kind), kind, true, Terms{
		TermYears:    a.BuyToLetTermYears,
		Deposit:      buyToLetDeposit,
		InterestRate: buyToLetRate,
	})
}
