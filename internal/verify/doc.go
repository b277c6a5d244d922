// Package verify applies the rank engine to every cell of a grid and checks
// whether the resulting ranks form a permutation of 0..N-1.
//
// A failed check is not an error. It is recorded on the Report as an anomaly
// together with the full value/rank pairing, and callers decide whether and
// how to render it. A clean report carries neither.
//
// Beyond the permutation check the report lists order inversions (cells whose
// ranks disagree with their values) and a Spearman fidelity score. Both are
// diagnostics and do not change whether a report is anomalous.
package verify
