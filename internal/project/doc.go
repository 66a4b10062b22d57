// Package project resolves a Scarb metadata snapshot into a
// cairo_project.toml configuration.
//
// # Overview
//
// The resolution is a single linear pass over an immutable snapshot:
//
//  1. Select the one compilation unit to eject for the requested package
//     (unit.go). Contract-build units are preferred over library units,
//     which are preferred over custom targets.
//  2. Project the unit's components into crate roots (roots.go), excluding
//     the implicit corelib crate.
//  3. Derive crate settings (resolver.go, settings.go): one global record
//     from the requested package and its unit, plus one override record per
//     non-corelib component.
//  4. Render the composed configuration as TOML (toml.go).
//
// # Graceful degradation
//
// Upstream metadata is loosely typed. The value parsers (edition.go,
// cfgset.go, features.go) are pure: they return a value or an error and
// never log. The resolver decides what an error means — an unparseable
// edition falls back to the default edition with a warning, a cfg list that
// does not survive the generic-to-native round trip yields no cfg set for
// that crate with a warning, and unresolvable dependency references or
// unknown experimental feature names are dropped silently. Only two
// conditions are fatal: no compilation unit for the package, and a package
// selector that cannot resolve to exactly one member (handled upstream in
// internal/scarb).
//
// # Determinism
//
// Resolving the same snapshot twice yields identical configurations.
// Ordered maps preserve component iteration order, unit selection breaks
// ties lexicographically, and rendering has no nondeterministic inputs.
package project
