// Package aggregates defines the registry's write contracts and its error taxonomy.
//
// These contracts avoid persistence/transport details: they describe which field
// is unique per kind, which kinds record their creator, and how failures are
// classified for callers.
package aggregates
