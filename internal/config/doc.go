// Package config provides the YAML configuration schema, parsing, and
// validation for a generation run.
//
// The config file selects which part of the generation matrix to run and
// tunes the per-shape arity ceilings:
//
//	version: "1"
//	output_dir: ./generated
//	comments: true
//	constraints_in_signature: false
//	flavors: [standalone, base]
//	shapes: [tuple, named-record, positional]
//	ceilings:
//	  tuple: 7
//	  named_record: 7
//	  positional: 9
//
// Ceilings may be raised on hosts without a fixed-size-record limit, but
// they stay bounded: arity validation is never removed.
package config
