// SPDX-License-Identifier: MIT

// Package matrix is the dense numeric core behind lvrank.
//
// The package provides:
//
//   - Dense: an immutable, row-major float64 matrix whose dimensions are
//     fixed at construction and checked at every operation entry point.
//   - Kind tags (General, Identity, Stochastic, RREF) that are set only by
//     validating constructors, so a matrix that claims to be column-stochastic
//     has actually been checked.
//   - Arithmetic kernels: Add, Sub, Scale, Mul, Transpose, MatVec and
//     tolerant comparison (EqualApprox).
//   - A reduced row-echelon engine with partial pivoting (RREF) and a
//     null-space solver on top of it (NullSpace).
//
// Every operation returns a fresh matrix; operands are never mutated, so
// matrices may be shared between goroutines without locking.
//
// Errors are package sentinels (see errors.go) wrapped with the operation
// name; match them with errors.Is.
package matrix
