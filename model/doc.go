// Package model holds the shared data the rest of the engine operates on:
// the ordered environment/system variable lists, the Specification tuple
// that ties a formula tree to those variables, and the two error kinds
// (SpecificationError, EngineError) raised by deeper components.
package model
