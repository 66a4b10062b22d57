package project

import "fmt"

// Edition is a versioned Cairo language-dialect selector.
type Edition string

// Known editions, in the compiler's serialized spelling.
const (
	EditionV2023_01 Edition = "2023_01"
	EditionV2023_10 Edition = "2023_10"
	EditionV2023_11 Edition = "2023_11"
	EditionV2024_07 Edition = "2024_07"
)

// DefaultEdition is assumed whenever a package declares no edition or an
// edition this tool does not recognize.
const DefaultEdition = EditionV2023_01

var knownEditions = map[Edition]bool{
	EditionV2023_01: true,
	EditionV2023_10: true,
	EditionV2023_11: true,
	EditionV2024_07: true,
}

// ParseEdition interprets a package's declared edition string.
//
// Pure: on an unrecognized value it returns an error and DefaultEdition;
// the caller decides whether that warrants a warning. It never fails a run.
func ParseEdition(raw string) (Edition, error) {
	e := Edition(raw)
	if !knownEditions[e] {
		return DefaultEdition, fmt.Errorf("unknown edition %q", raw)
	}
	return e, nil
}
