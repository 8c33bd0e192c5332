// Package harness runs conformance scenarios against the complex type.
//
// # Scenario Format
//
// Scenarios are defined in YAML files with the following structure:
//
//	name: scenario_name
//	description: "What this scenario validates"
//	precision: float64          # or float32
//	tolerance: 1e-12            # 0 or absent means exact
//	steps:
//	  - op: div
//	    lhs: [5, 2]
//	    rhs: [4, 5]
//	    expect: [0.7317073170731707, -0.4146341463414634]
//	  - op: div_scalar
//	    lhs: [5, 2]
//	    scalar: 0
//	    error: DIVISION_BY_ZERO
//	  - op: mod
//	    lhs: [3, 4]
//	    expect_scalar: 5
//	  - op: display
//	    lhs: [5, 2]
//	    mode: tuple
//	    expect_text: "(5, 2)"
//	samples:
//	  - [5, 2]
//	  - [4, 5]
//	properties:
//	  - add_commutative
//	  - div_round_trip
//
// Operands are written as [re, im]. Each step needs exactly one of expect,
// expect_scalar, expect_text or error.
//
// # Properties
//
// Properties are algebraic laws checked over the samples: commutativity of
// add and mul, additive and multiplicative identity, division round trip,
// double conjugate, conjugate modulus, zeroth and fourth power, and division
// by zero. Approximate laws use the scenario tolerance, or a
// precision-specific default.
//
// # Usage
//
//	scenario, err := harness.LoadScenario("testdata/scenarios/arithmetic.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := harness.Run(scenario)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, msg := range result.Errors {
//	    log.Println(msg)
//	}
package harness
