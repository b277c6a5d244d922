// Package harness runs grid scenarios through the verifier and checks the
// outcome against the scenario's assertions and a golden snapshot.
//
// # Scenario Format
//
// Scenarios are YAML or CUE files with the following structure:
//
//	name: unorder
//	description: "Right half breaks row and column order"
//	grid:
//	  - [0, 1, 10, 15, 20]
//	  - [2, 6, 11, 16, 21]
//	assertions:
//	  - type: bijective
//	  - type: misordered
//	  - type: rank_at
//	    x: 3
//	    y: 0
//	    rank: 13
//
// CUE scenarios use the same field names and are checked against the
// embedded #Scenario schema before decoding.
//
// # Assertion Types
//
//   - bijective: ranks form a permutation of 0..N-1
//   - anomalous: the permutation check failed
//   - ordered: no two cells are ranked against their values
//   - misordered: at least one inversion exists
//   - rank_at: cell (x, y) has the given rank
//   - ranks: the whole rank grid matches
//   - anomaly_count: the given rank occurred count times (count != 1)
//
// # Golden Snapshots
//
// Every run produces the canonical JSON snapshot from package report. Tests
// compare it with testdata/scenarios/golden/{name}.golden via goldie:
//
//	go test ./internal/harness -update
package harness
