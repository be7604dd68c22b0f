package ladder

import (
	"errors"
	"testing"
)

func TestNewProperty(t *testing.T) {
	p := referenceFlat(t)
	m := p.Mortgage()
	if !m.Deposit().Equal(A(15000)) {
		t.Errorf("Deposit() = %s, want 15000", m.Deposit())
	}
	if !m.InitialPrincipal().Equal(A(135000)) {
		t.Errorf("InitialPrincipal() = %s, want 135000", m.InitialPrincipal())
	}
	if !p.Principal().Equal(A(135000)) {
		t.Errorf("Principal() = %s, want 135000", p.Principal())
	}
	if !p.LTV().Equal(R(0.9)) {
		t.Errorf("LTV() = %s, want 90%%", p.LTV())
	}
	if !p.IsFlat() || p.BuyToLet() {
		t.Errorf("got flat=%v buyToLet=%v, want a residential flat", p.IsFlat(), p.BuyToLet())
	}
	if m.Elapsed() != 0 || m.TermMonths() != 480 {
		t.Errorf("got elapsed %d of %d months, want 0 of 480", m.Elapsed(), m.TermMonths())
	}
}

func TestNewProperty_InvalidConfiguration(t *testing.T) {
	valid := Terms{TermYears: 40, Deposit: R(0.1), InterestRate: R(0.05)}
	testCases := []struct {
		name  string
		value float64
		kind  Kind
		terms func(Terms) Terms
	}{
		{name: "zero value", value: 0, kind: Flat},
		{name: "negative value", value: -1, kind: Flat},
		{name: "unknown kind", value: 150000, kind: 'X'},
		{name: "zero term", value: 150000, kind: Flat, terms: func(t Terms) Terms { t.TermYears = 0; return t }},
		{name: "negative rate", value: 150000, kind: Flat, terms: func(t Terms) Terms { t.InterestRate = R(-0.01); return t }},
		{name: "deposit above value", value: 150000, kind: House, terms: func(t Terms) Terms { t.Deposit = R(1.5); return t }},
		{name: "negative deposit", value: 150000, kind: House, terms: func(t Terms) Terms { t.Deposit = R(-0.1); return t }},
		{name: "twelve elapsed months", value: 150000, kind: Flat, terms: func(t Terms) Terms { t.ElapsedMonths = 12; return t }},
		{name: "elapsed beyond term", value: 150000, kind: Flat, terms: func(t Terms) Terms { t.ElapsedYears = 40; t.ElapsedMonths = 1; return t }},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			terms := valid
			if tc.terms != nil {
				terms = tc.terms(terms)
			}
			_, err := NewProperty(A(tc.value), tc.kind, false, terms)
			if !errors.Is(err, ErrInvalidConfiguration) {
				t.Errorf("NewProperty() error = %v, want ErrInvalidConfiguration", err)
			}
		})
	}
}

func TestProperty_ConvertToBuyToLet(t *testing.T) {
	t.Run("ineligible above 75% LTV", func(t *testing.T) {
		p := referenceFlat(t) // LTV 90%
		before := p.Mortgage()
		got, err := p.ConvertToBuyToLet(25)
		if !errors.Is(err, ErrIneligibleConversion) {
			t.Fatalf("ConvertToBuyToLet() error = %v, want ErrIneligibleConversion", err)
		}
		if !got.Equal(p) || !p.Mortgage().Equal(before) {
			t.Errorf("ConvertToBuyToLet() changed the mortgage: got %v, want %v", got, p)
		}
		if got.BuyToLet() {
			t.Error("ineligible property was flagged buy-to-let")
		}
	})

	t.Run("eligible", func(t *testing.T) {
		p := mustProperty(t, 150000, Flat, Terms{TermYears: 40, Deposit: R(0.3), InterestRate: R(0.05), ElapsedYears: 3, ElapsedMonths: 4})
		got, err := p.ConvertToBuyToLet(25)
		if err != nil {
			t.Fatalf("ConvertToBuyToLet() failed: %v", err)
		}
		m := got.Mortgage()
		if !got.BuyToLet() {
			t.Error("converted property is not buy-to-let")
		}
		if !m.Deposit().Equal(A(37500)) || !m.InitialPrincipal().Equal(A(112500)) || !m.Principal().Equal(A(112500)) {
			t.Errorf("got deposit %s principal %s/%s, want 37500 and 112500", m.Deposit(), m.Principal(), m.InitialPrincipal())
		}
		if !m.InterestRate().Equal(R(0.052)) || m.TermYears() != 25 || m.Elapsed() != 0 {
			t.Errorf("got rate %s term %d elapsed %d, want 5.2%% over 25 years from scratch", m.InterestRate(), m.TermYears(), m.Elapsed())
		}
		if p.BuyToLet() || !p.Principal().Equal(A(105000)) {
			t.Error("ConvertToBuyToLet() modified its receiver")
		}
	})

	t.Run("exactly 75% LTV is eligible", func(t *testing.T) {
		p := mustProperty(t, 220000, House, Terms{TermYears: 40, Deposit: R(0.25), InterestRate: R(0.05)})
		if _, err := p.ConvertToBuyToLet(25); err != nil {
			t.Errorf("ConvertToBuyToLet() failed: %v", err)
		}
	})

	t.Run("invalid term", func(t *testing.T) {
		p := mustProperty(t, 150000, Flat, Terms{TermYears: 40, Deposit: R(0.5), InterestRate: R(0.05)})
		got, err := p.ConvertToBuyToLet(0)
		if !errors.Is(err, ErrInvalidConfiguration) {
			t.Fatalf("ConvertToBuyToLet(0) error = %v, want ErrInvalidConfiguration", err)
		}
		if !got.Equal(p) {
			t.Error("ConvertToBuyToLet(0) changed the property")
		}
	})
}

func TestParseKind(t *testing.T) {
	for _, r := range "FH" {
		if _, err := ParseKind(r); err != nil {
			t.Errorf("ParseKind(%q) failed: %v", r, err)
		}
	}
	for _, r := range "fhX " {
		if _, err := ParseKind(r); !errors.Is(err, ErrInvalidConfiguration) {
			t.Errorf("ParseKind(%q) error = %v, want ErrInvalidConfiguration", r, err)
		}
	}
}

func TestProperty_ZeroValue(t *testing.T) {
	var p Property
	if !p.LTV().IsZero() {
		t.Errorf("LTV() = %s, want 0", p.LTV())
	}
	months, _, err := MonthsToReachLTV(p, R(0.75), A(0), A(0), 0)
	if err != nil || months != 0 {
		t.Errorf("MonthsToReachLTV() = %d, %v, want 0 months", months, err)
	}
	var h History
	if err := h.Append(1, A(0), []Property{p}); err != nil {
		t.Fatalf("Append() failed: %v", err)
	}
	if s := h.At(0); !s.Properties[0].LTV.IsZero() {
		t.Errorf("snapshot LTV = %s, want 0", s.Properties[0].LTV)
	}
}
