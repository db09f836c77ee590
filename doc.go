// Package lvmatch allocates participants to capacity-limited projects with
// deferred acceptance, searching proposal orders for the stable matching of
// lowest egalitarian cost.
//
// 🚀 What is lvmatch?
//
//	A small, dependency-light toolkit that brings together:
//		• Proposal engine: participant-proposing deferred acceptance with
//		  capacities and "open door" projects that admit unranked participants
//		• Stability check: blocking-pair detection under the same rules
//		• Egalitarian cost: summed rank of every matched pair, both sides
//		• Exhaustive search: every proposal order, lowest cost wins
//		• Vacancy filler: seeded random placement of leftover participants
//		• YAML instances: names or indices, plus a CLI front end
//
// Under the hood, everything is organized under these packages:
//
//	matching/          engine, validation, stability, cost, search and fill
//	instance/          YAML instance documents and result reports
//	internal/cmd/      lvmatch command wiring (env + flags)
//	cmd/lvmatch/       thin main for the CLI
//	examples/          runnable scenarios
//
// Quick example:
//
//	in := &matching.Instance{...}
//	res, err := matching.Solve(in, matching.WithFill(), matching.WithSeed(7))
//
//	go install github.com/katalvlaran/lvmatch/cmd/lvmatch@latest
package lvmatch
