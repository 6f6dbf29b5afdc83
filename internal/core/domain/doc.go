// Package domain defines the core business entities for museo.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - RawRecord: A catalog object as returned by the remote API
//   - ArtifactMetadata, ArtifactMedia, ArtifactColor: The three flat relations
//   - ResultSet: One fetch batch holding all three relations
//   - Query: A canned question and the SQL that answers it
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
