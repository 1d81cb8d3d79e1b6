// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the dense kernels.
// This file contains ONLY type declarations (kind tags). Errors and options
// live in dedicated files (errors.go, options.go).
package matrix

// Kind tags a Dense with a structural property that has been verified.
// The zero value is KindGeneral: nothing beyond shape is promised.
//
// Kinds are never set by callers directly. Only validating constructors
// attach a non-general kind:
//   - NewIdentity      → KindIdentity
//   - AsStochastic     → KindStochastic
//   - RREF             → KindRREF
//
// Arithmetic results are always KindGeneral, even when mathematically the
// property survives (e.g. Scale(I, 1)); re-validate to regain a tag.
type Kind uint8

const (
	// KindGeneral carries no structural promise.
	KindGeneral Kind = iota

	// KindIdentity is the n×n identity produced by NewIdentity.
	KindIdentity

	// KindStochastic is a square, non-negative matrix whose every column sums to 1 within eps.
	KindStochastic

	// KindRREF is a matrix in reduced row-echelon form produced by RREF.
	KindRREF
)

var kindNames = [...]string{
	KindGeneral:    "general",
	KindIdentity:   "identity",
	KindStochastic: "stochastic",
	KindRREF:       "rref",
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}

	return "unknown"
}
