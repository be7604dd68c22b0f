package ladder

import "fmt"

// Kind is the type of a property. Its value is the letter used in strategy codes.
type Kind byte

const (
	Flat  Kind = 'F'
	House Kind = 'H'
)

// ParseKind parses a strategy letter.
func ParseKind(r rune) (Kind, error) {
	switch k := Kind(r); k {
	case Flat, House:
		return k, nil
	}
	return 0, fmt.Errorf("%w: unknown property kind %q, want F or H", ErrInvalidConfiguration, r)
}

func (k Kind) String() string {
	switch k {
	case Flat:
		return "flat"
	case House:
		return "house"
	}
	return fmt.Sprintf("Kind(%d)", byte(k))
}

// Buy-to-let refinancing rules.
var (
	maxBuyToLetLTV  = R(0.75)  // highest loan-to-value accepted for a conversion
	buyToLetDeposit = R(0.25)  // deposit share of a buy-to-let mortgage
	buyToLetRate    = R(0.052) // annual rate of a buy-to-let mortgage
)

// Terms are the mortgage terms agreed when a property is bought.
type Terms struct {
	TermYears    int   // length of the mortgage
	Deposit      Ratio // share of the value paid upfront
	InterestRate Ratio // annual rate

	// Time already spent repaying, for properties bought in the past.
	ElapsedYears  int
	ElapsedMonths int
}

// Mortgage is the loan state of a property.
//
// A Mortgage is a value: every change produces a new one.
type Mortgage struct {
	deposit          Amount
	initialPrincipal Amount
	interestRate     Ratio
	termYears        int
	elapsedYears     int
	elapsedMonths    int
	principal        Amount
}

func (m Mortgage) Deposit() Amount          { return m.deposit }
func (m Mortgage) InitialPrincipal() Amount { return m.initialPrincipal }
func (m Mortgage) InterestRate() Ratio      { return m.interestRate }
func (m Mortgage) TermYears() int           { return m.termYears }
func (m Mortgage) ElapsedYears() int        { return m.elapsedYears }
func (m Mortgage) ElapsedMonths() int       { return m.elapsedMonths }

// Principal returns the remaining principal.
func (m Mortgage) Principal() Amount { return m.principal }

// Elapsed returns the total number of months repaid so far.
func (m Mortgage) Elapsed() int { return m.elapsedYears*12 + m.elapsedMonths }

// TermMonths returns the total number of monthly payments.
func (m Mortgage) TermMonths() int { return m.termYears * 12 }

// Equal reports whether both mortgages have identical fields.
func (m Mortgage) Equal(n Mortgage) bool {
	return m.deposit.Equal(n.deposit) &&
		m.initialPrincipal.Equal(n.initialPrincipal) &&
		m.interestRate.Equal(n.interestRate) &&
		m.termYears == n.termYears &&
		m.elapsedYears == n.elapsedYears &&
		m.elapsedMonths == n.elapsedMonths &&
		m.principal.Equal(n.principal)
}

// advance moves the elapsed time one month forward, never past the term.
func (m *Mortgage) advance() {
	if m.Elapsed() >= m.TermMonths() {
		return
	}
	m.elapsedMonths++
	if m.elapsedMonths == 12 {
		m.elapsedYears++
		m.elapsedMonths = 0
	}
}

// validate checks the mortgage invariants.
func (m Mortgage) validate() error {
	switch {
	case m.termYears <= 0:
		return fmt.Errorf("%w: mortgage term must be positive, got %d years", ErrInvalidConfiguration, m.termYears)
	case m.interestRate.IsNegative():
		return fmt.Errorf("%w: negative interest rate %s", ErrInvalidConfiguration, m.interestRate)
	case m.elapsedYears < 0 || m.elapsedMonths < 0 || m.elapsedMonths >= 12:
		return fmt.Errorf("%w: invalid elapsed time %dy%dm", ErrInvalidConfiguration, m.elapsedYears, m.elapsedMonths)
	case m.Elapsed() > m.TermMonths():
		return fmt.Errorf("%w: elapsed time %dy%dm exceeds the %d years term", ErrInvalidConfiguration, m.elapsedYears, m.elapsedMonths, m.termYears)
	case m.principal.IsNegative() || m.principal.GreaterThan(m.initialPrincipal):
		return fmt.Errorf("%w: remaining principal %s outside [0, %s]", ErrInvalidConfiguration, m.principal, m.initialPrincipal)
	}
	return nil
}

// Property is a property and its mortgage.
//
// Property is a value type: functions that advance its mortgage return a new
// Property and leave their argument untouched.
type Property struct {
	value    Amount
	kind     Kind
	buyToLet bool
	mortgage Mortgage
}

// NewProperty returns a property bought for value under the given terms.
//
// The deposit is a share of the value; it is converted once here into the
// absolute Mortgage.Deposit amount, and the initial principal is the rest.
func NewProperty(value Amount, kind Kind, buyToLet bool, terms Terms) (Property, error) {
	if !value.IsPositive() {
		return Property{}, fmt.Errorf("%w: property value must be positive, got %s", ErrInvalidConfiguration, value)
	}
	if _, err := ParseKind(rune(kind)); err != nil {
		return Property{}, err
	}
	if !terms.Deposit.Between(zeroRatio, oneRatio) {
		return Property{}, fmt.Errorf("%w: deposit %s outside [0%%, 100%%]", ErrInvalidConfiguration, terms.Deposit)
	}
	deposit := value.Mul(terms.Deposit)
	principal := value.Sub(deposit)
	m := Mortgage{
		deposit:          deposit,
		initialPrincipal: principal,
		interestRate:     terms.InterestRate,
		termYears:        terms.TermYears,
		elapsedYears:     terms.ElapsedYears,
		elapsedMonths:    terms.ElapsedMonths,
		principal:        principal,
	}
	if err := m.validate(); err != nil {
		return Property{}, err
	}
	return Property{value: value, kind: kind, buyToLet: buyToLet, mortgage: m}, nil
}

func (p Property) Value() Amount      { return p.value }
func (p Property) Kind() Kind         { return p.kind }
func (p Property) IsFlat() bool       { return p.kind == Flat }
func (p Property) BuyToLet() bool     { return p.buyToLet }
func (p Property) Mortgage() Mortgage { return p.mortgage }

// Principal returns the remaining principal of the mortgage.
func (p Property) Principal() Amount { return p.mortgage.principal }

// LTV returns the loan-to-value: remaining principal over value. It is zero
// for the zero Property.
func (p Property) LTV() Ratio {
	if p.value.IsZero() {
		return Ratio{}
	}
	return p.mortgage.principal.Ratio(p.value)
}

// Equity returns the value minus the remaining principal.
func (p Property) Equity() Amount { return p.value.Sub(p.mortgage.principal) }

// Equal reports whether both properties have identical fields.
func (p Property) Equal(q Property) bool {
	return p.value.Equal(q.value) && p.kind == q.kind && p.buyToLet == q.buyToLet && p.mortgage.Equal(q.mortgage)
}

// ConvertToBuyToLet refinances the property into a buy-to-let mortgage over
// termYears: 25% of the value is kept as deposit (whole units), the rate
// becomes 5.2% and the elapsed time restarts.
//
// A property whose loan-to-value is above 75% is not eligible:
// it is returned unchanged with ErrIneligibleConversion.
func (p Property) ConvertToBuyToLet(termYears int) (Property, error) {
	if ltv := p.LTV(); ltv.GreaterThan(maxBuyToLetLTV) {
		return p, fmt.Errorf("%w: LTV %s is above %s", ErrIneligibleConversion, ltv, maxBuyToLetLTV)
	}
	deposit := p.value.Mul(buyToLetDeposit).Truncate()
	principal := p.value.Sub(deposit)
	m := Mortgage{
		deposit:          deposit,
		initialPrincipal: principal,
		interestRate:     buyToLetRate,
		termYears:        termYears,
		principal:        principal,
	}
	if err := m.validate(); err != nil {
		return p, err
	}
	p.buyToLet = true
	p.mortgage = m
	return p, nil
}

func (p Property) String() string {
	return fmt.Sprintf("%s %s (principal %s, LTV %s)", p.kind, p.value, p.mortgage.principal, p.LTV())
}
