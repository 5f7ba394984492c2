// Package validation holds the reference validators (existence by id,
// uniqueness by name or identifier) and the aggregate validators
// (cross-field invariants) every registry write runs before persisting.
//
// Validators are side-effect free and fail fast with a registry error whose
// details name the offending field or id.
package validation
