package ladder

import (
	"fmt"
	"iter"
)

// PropertySnapshot is the state of one property at the end of a month.
type PropertySnapshot struct {
	Value              Amount `json:"value"`
	RemainingPrincipal Amount `json:"remaining_principal"`
	LTV                Ratio  `json:"ltv"` // rounded to 4 decimals
}

// Snapshot is the state of a run at the end of a month.
type Snapshot struct {
	Month      int                `json:"month"`
	Savings    Amount             `json:"savings"`
	Properties []PropertySnapshot `json:"properties"`
}

// History is the month by month log of a run.
//
// Entries can only be appended, one per month, starting at month 1 with no
// gaps. Snapshots are copies: later changes to the run never alter them.
type History struct {
	entries []Snapshot
}

// Append records the state at the end of month.
func (h *History) Append(month int, savings Amount, portfolio []Property) error {
	if want := h.Len() + 1; month != want {
		return fmt.Errorf("history: got month %d, want %d", month, want)
	}
	props := make([]PropertySnapshot, len(portfolio))
	for i, p := range portfolio {
		props[i] = PropertySnapshot{
			Value:              p.value,
			RemainingPrincipal: p.mortgage.principal,
			LTV:                p.LTV().Round(4),
		}
	}
	h.entries = append(h.entries, Snapshot{Month: month, Savings: savings, Properties: props})
	return nil
}

// Len returns the number of months recorded.
func (h *History) Len() int { return len(h.entries) }

// At returns a copy of the i-th snapshot.
func (h *History) At(i int) Snapshot { return h.entries[i].clone() }

// Latest returns a copy of the last snapshot, or false if the history is empty.
func (h *History) Latest() (Snapshot, bool) {
	if h.Len() == 0 {
		return Snapshot{}, false
	}
	return h.At(h.Len() - 1), true
}

// All iterates over copies of the snapshots in chronological order.
func (h *History) All() iter.Seq[Snapshot] {
	return func(yield func(Snapshot) bool) {
		for _, s := range h.entries {
			if !yield(s.clone()) {
				return
			}
		}
	}
}

// Snapshots returns a copy of all the snapshots.
func (h *History) Snapshots() []Snapshot {
	list := make([]Snapshot, 0, h.Len())
	for s := range h.All() {
		list = append(list, s)
	}
	return list
}

func (s Snapshot) clone() Snapshot {
	props := make([]PropertySnapshot, len(s.Properties))
	copy(props, s.Properties)
	s.Properties = props
	return s
}
