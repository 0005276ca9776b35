// Package config loads the evacroute CLI settings.
//
// Sources, later ones winning:
//
//  1. Default(): the engine defaults and no rules file.
//  2. A YAML file (Load / Parse); keys absent from the file keep their
//     defaults, unknown keys are rejected.
//  3. EVACROUTE_* environment variables (ApplyEnv), which the CLI may first
//     populate from a .env file.
//
// Example:
//
//	engine:
//	  resolution: 0.25
//	  diagonals: true
//	  snap: {primary: 10, fallback: 25}
//	  bridges: {vertical_cost: 1.4, horizontal_penalty: 0.2, max_landings: 4}
//	compliance:
//	  rules: rules.json
//	  typology: office
//	  extinguishing: false
//	report:
//	  top: 10
package config
