// Package kernel provides core domain primitives for the parcel system.
// It implements fundamental building blocks following Domain-Driven Design
// principles that are used throughout the domain model.
//
// The package currently contains UUID, a value object for unique identifiers
// with validation and comparison capabilities. Kernel primitives enforce
// domain invariants, are immutable, and are safe for concurrent use.
package kernel
