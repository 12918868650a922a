// Package gen provides deterministic textual rendering of output units.
//
// Each unit becomes one declaration file: a header, the shared
// disambiguation-marker declarations, then every converter definition as a
// signature/body block. The format is host-language neutral; per-language
// source emission happens downstream of this repository.
//
// Rendering uses text/template with all strings precomputed, so output is
// byte-for-byte reproducible for identical input.
package gen
