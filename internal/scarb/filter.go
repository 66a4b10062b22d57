package scarb

import (
	"fmt"
	"strings"

	"github.com/cairotools/scarb-eject/pkg/eject"
)

// PackagesFilter resolves a package spec against the workspace members of a
// metadata snapshot.
//
// The spec is a comma-separated list of package names; "*" matches every
// member. An empty spec means "the workspace's obvious choice": the sole
// member if there is exactly one.
type PackagesFilter struct {
	spec string
}

// NewPackagesFilter creates a filter from a spec string.
func NewPackagesFilter(spec string) PackagesFilter {
	return PackagesFilter{spec: strings.TrimSpace(spec)}
}

// MatchOne resolves the filter to exactly one workspace member.
//
// Errors (all wrapping the corresponding eject sentinel):
//   - the workspace has no members
//   - the spec names a package that is not a member
//   - the spec is empty and the workspace has several members, or the spec
//     matches several members
func (f PackagesFilter) MatchOne(meta *Metadata) (*PackageMetadata, error) {
	members := f.members(meta)
	if len(members) == 0 && f.spec == "" {
		return nil, fmt.Errorf("%w: workspace of %s", eject.ErrNoMembers, meta.Workspace.Root)
	}

	matched, err := f.match(members)
	if err != nil {
		return nil, err
	}
	if len(matched) > 1 {
		names := make([]string, len(matched))
		for i, p := range matched {
			names[i] = p.Name
		}
		return nil, fmt.Errorf("%w: workspace has multiple members (%s), use --package to specify one",
			eject.ErrAmbiguousPackage, strings.Join(names, ", "))
	}
	return matched[0], nil
}

// members returns the member packages in workspace declaration order,
// joining Workspace.Members ids against the package list.
func (f PackagesFilter) members(meta *Metadata) []*PackageMetadata {
	byID := make(map[PackageID]*PackageMetadata, len(meta.Packages))
	for i := range meta.Packages {
		byID[meta.Packages[i].ID] = &meta.Packages[i]
	}

	var members []*PackageMetadata
	for _, id := range meta.Workspace.Members {
		if pkg, ok := byID[id]; ok {
			members = append(members, pkg)
		}
	}
	return members
}

func (f PackagesFilter) match(members []*PackageMetadata) ([]*PackageMetadata, error) {
	if f.spec == "" || f.spec == "*" {
		if len(members) == 0 {
			return nil, fmt.Errorf("%w: no member matched the filter", eject.ErrNoMembers)
		}
		return members, nil
	}

	byName := make(map[string][]*PackageMetadata)
	for _, pkg := range members {
		byName[pkg.Name] = append(byName[pkg.Name], pkg)
	}

	var matched []*PackageMetadata
	for _, name := range strings.Split(f.spec, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		pkgs, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("%w: %s is not a workspace member", eject.ErrPackageNotFound, name)
		}
		matched = append(matched, pkgs...)
	}
	if len(matched) == 0 {
		return nil, fmt.Errorf("%w: filter %q matched nothing", eject.ErrPackageNotFound, f.spec)
	}
	return matched, nil
}
