// Package domain defines the core business entities for charforge.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Person: A created character, either an Adult or a Child
//   - ColorSet: A closed allow-list of eye or hair colours
//   - Character: The stored snapshot of a finalized Person
//   - AppSettings: User-configurable behaviour
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
