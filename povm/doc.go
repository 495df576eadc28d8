// SPDX-License-Identifier: MIT

// Package povm derives the effective POVM of photon-number-resolving
// detectors behind a balanced beam splitter.
//
// Photons enter through modes a and b, leave through modes c and d, and
// the detectors count clicks (nC, nD). For input photon numbers up to
// (maxA, maxB) the element for (nC, nD) is
//
//	M = U† · P(nC, nD) · U
//
// where U maps the qudit |n m> to the Fock state FockState(n, m) and
// P(nC, nD) projects onto nC photons in c and nD in d. Wave-packet
// variables are integrated out between the products, so M acts on qudits
// only and its coefficients are numbers and overlaps <phi|psi> between the
// photons of the two inputs. Visibility turns those overlaps into numbers.
//
// The algebra is exponential in the photon number; Generate computes the
// independent elements on a bounded worker pool.
package povm
