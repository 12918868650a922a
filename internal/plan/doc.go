// Package plan drives the full generation matrix and produces the in-memory
// output units consumed by rendering.
//
// Driving order:
//  1. For each (source flavor, record shape) pair, one output unit
//  2. Within a unit, arities ascending from 2 to the shape ceiling
//  3. Within an arity, classifications in enumeration order
//
// Units are independent, so they are computed concurrently; assembly order
// stays fixed, making the overall output deterministic. A duplicate overload
// key inside a unit aborts the run: a silently doubled signature would be
// unresolvable downstream.
package plan
