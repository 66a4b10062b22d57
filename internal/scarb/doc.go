// Package scarb consumes the Scarb build tool's metadata query.
//
// # Overview
//
// Scarb describes a workspace as a single JSON document: the workspace root
// and members, every package (name, version, edition, experimental feature
// opt-ins), and every compilation unit with its components and their
// dependency edges. This package provides:
//
//   - Go types mirroring the metadata document (types.go, cfg.go)
//   - MetadataCommand, which shells out to `scarb --json metadata
//     --format-version 1` and decodes the snapshot (metadata_command.go)
//   - PackagesFilter, which resolves a package spec to exactly one
//     workspace member (filter.go)
//
// The snapshot is read-only input: nothing in this repository mutates it
// after decoding.
//
// # Identifier spaces
//
// The document uses two independent identifier spaces that downstream code
// joins by hand:
//
//   - PackageID: opaque package identity ("name version (source)"),
//     referenced by compilation units and components
//   - component id: opaque per-component identity, referenced only by
//     sibling components' dependency lists within the same unit
//
// # Format version
//
// Only metadata format version 1 is supported. A document with any other
// version pin is rejected rather than half-understood.
package scarb
