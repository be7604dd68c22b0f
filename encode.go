package ladder

import (
	"encoding/json"
	"fmt"
	"io"
)

// Properties are encoded as a flat JSON object with a nested mortgage:
//
//	{"value":150000,"kind":"F","buy_to_let":false,"mortgage":{"deposit":15000,...}}
//
// Every field is always written so that decoding restores the exact state.

// MarshalJSON implements json.Marshaler.
func (p Property) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("value", p.value)
	w.Append("kind", string(rune(p.kind)))
	w.Append("buy_to_let", p.buyToLet)
	w.Object("mortgage", func(m *jsonObjectWriter) {
		m.Append("deposit", p.mortgage.deposit)
		m.Append("initial_principal", p.mortgage.initialPrincipal)
		m.Append("interest_rate", p.mortgage.interestRate)
		m.Append("term_years", p.mortgage.termYears)
		m.Append("elapsed_years", p.mortgage.elapsedYears)
		m.Append("elapsed_months", p.mortgage.elapsedMonths)
		m.Append("remaining_principal", p.mortgage.principal)
	})
	return w.MarshalJSON()
}

// UnmarshalJSON implements json.Unmarshaler. The decoded property must
// satisfy the same invariants as one built by NewProperty.
func (p *Property) UnmarshalJSON(data []byte) error {
	// jproperty is the object read from the json, with tag annotations.
	type jproperty struct {
		Value    Amount `json:"value"`
		Kind     string `json:"kind"`
		BuyToLet bool   `json:"buy_to_let"`
		Mortgage struct {
			Deposit            Amount `json:"deposit"`
			InitialPrincipal   Amount `json:"initial_principal"`
			InterestRate       Ratio  `json:"interest_rate"`
			TermYears          int    `json:"term_years"`
			ElapsedYears       int    `json:"elapsed_years"`
			ElapsedMonths      int    `json:"elapsed_months"`
			RemainingPrincipal Amount `json:"remaining_principal"`
		} `json:"mortgage"`
	}
	var jp jproperty
	if err := json.Unmarshal(data, &jp); err != nil {
		return err
	}
	if len(jp.Kind) != 1 {
		return fmt.Errorf("%w: invalid property kind %q", ErrInvalidConfiguration, jp.Kind)
	}
	kind, err := ParseKind(rune(jp.Kind[0]))
	if err != nil {
		return err
	}
	if !jp.Value.IsPositive() {
		return fmt.Errorf("%w: property value must be positive, got %s", ErrInvalidConfiguration, jp.Value)
	}
	m := Mortgage{
		deposit:          jp.Mortgage.Deposit,
		initialPrincipal: jp.Mortgage.InitialPrincipal,
		interestRate:     jp.Mortgage.InterestRate,
		termYears:        jp.Mortgage.TermYears,
		elapsedYears:     jp.Mortgage.ElapsedYears,
		elapsedMonths:    jp.Mortgage.ElapsedMonths,
		principal:        jp.Mortgage.RemainingPrincipal,
	}
	if err := m.validate(); err != nil {
		return err
	}
	if m.deposit.IsNegative() || !m.deposit.Add(m.initialPrincipal).Equal(jp.Value) {
		return fmt.Errorf("%w: deposit %s and initial principal %s do not add up to the value %s",
			ErrInvalidConfiguration, m.deposit, m.initialPrincipal, jp.Value)
	}
	*p = Property{value: jp.Value, kind: kind, buyToLet: jp.BuyToLet, mortgage: m}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (s Strategy) MarshalJSON() ([]byte, error) { return json.Marshal(s.String()) }

// MarshalJSON writes the history as an array of snapshots.
func (h History) MarshalJSON() ([]byte, error) {
	if h.entries == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(h.entries)
}

// MarshalJSON implements json.Marshaler.
func (r Result) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("strategy", r.Strategy)
	w.Append("months", r.Months)
	w.Append("net_assets", r.NetAssets)
	w.Append("savings", r.Savings)
	w.Append("portfolio", r.Portfolio)
	w.Append("history", r.History)
	return w.MarshalJSON()
}

// EncodeHistory writes one JSON snapshot per line.
func EncodeHistory(w io.Writer, h *History) error {
	enc := json.NewEncoder(w)
	for s := range h.All() {
		if err := enc.Encode(s); err != nil {
			return fmt.Errorf("cannot encode month %d: %w", s.Month, err)
		}
	}
	return nil
}

// MarshalJSON implements json.Marshaler. Failed candidates carry an error
// message.
func (c Candidate) MarshalJSON() ([]byte, error) {
	var msg string
	if c.Err != nil {
		msg = c.Err.Error()
	}
	var w jsonObjectWriter
	w.Append("strategy", c.Strategy)
	w.Append("deposit", c.Deposit)
	w.Append("overpayment", c.Overpayment)
	w.Append("months", c.Months)
	w.Append("net_assets", c.NetAssets)
	w.Optional("error", msg)
	return w.MarshalJSON()
}

// MarshalJSON implements json.Marshaler. The best candidate is omitted when
// none was found.
func (s SearchResult) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("found", s.Found)
	if s.Found {
		w.Append("best", s.Best)
	}
	w.Append("candidates", s.Candidates)
	return w.MarshalJSON()
}
