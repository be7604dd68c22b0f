// Package ladder simulates climbing the property ladder: saving for a
// deposit, buying a property, repaying its mortgage, and splitting the spare
// income every month between overpaying that mortgage and saving for the next
// property, until a sequence of purchases like "flat then house" completes.
//
// The core functionalities include:
//   - Property and Mortgage: value types describing a property and its loan.
//     Every operation returns a new value, properties are never shared.
//   - Costs: stamp duty, purchase fees and time to afford a purchase.
//   - Repayment: amortization, monthly stepping with overpayments, and time to
//     reach a loan-to-value.
//   - Allocation: the policy splitting the monthly budget between saving and
//     overpaying, driven by the loan-to-value of the latest mortgage.
//   - Strategies: RunStrategy sequences the purchases of a strategy code and
//     returns the months elapsed, the net assets and the monthly History.
//   - Search: explores deposits, overpayment splits and strategy codes to
//     find the fastest way up the ladder.
//
// Amounts are plain decimal units, with no currency. The package does no I/O
// and keeps no global state: independent runs can execute in parallel.
//
// This package serves as the foundational logic for the `pld` command-line
// tool.
package ladder
