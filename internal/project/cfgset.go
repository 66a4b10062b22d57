package project

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cairotools/scarb-eject/internal/scarb"
)

// CfgSet is the compiler's native conditional-compilation set: an ordered,
// duplicate-free collection of cfg entries in their canonical textual form.
type CfgSet struct {
	entries []string
	seen    map[string]bool
}

// NewCfgSet creates a CfgSet from canonical entries. Entries are not
// grammar-checked; use ConvertCfg for untrusted input.
func NewCfgSet(entries ...string) *CfgSet {
	set := &CfgSet{seen: make(map[string]bool)}
	for _, e := range entries {
		set.insert(e)
	}
	return set
}

func (s *CfgSet) insert(entry string) {
	if s.seen == nil {
		s.seen = make(map[string]bool)
	}
	if s.seen[entry] {
		return
	}
	s.seen[entry] = true
	s.entries = append(s.entries, entry)
}

// Entries returns the set's entries in insertion order. The returned slice
// is shared; callers must not mutate it.
func (s *CfgSet) Entries() []string {
	return s.entries
}

// Contains reports whether the set holds entry.
func (s *CfgSet) Contains(entry string) bool {
	return s.seen[entry]
}

// Len returns the number of distinct entries.
func (s *CfgSet) Len() int {
	return len(s.entries)
}

// UnmarshalJSON decodes a JSON array of strings, holding every entry to the
// compiler's cfg grammar: a bare name, or key=<double-quoted value>.
func (s *CfgSet) UnmarshalJSON(data []byte) error {
	var raws []string
	if err := json.Unmarshal(data, &raws); err != nil {
		return err
	}
	parsed := CfgSet{seen: make(map[string]bool)}
	for _, raw := range raws {
		if err := validateCfgEntry(raw); err != nil {
			return err
		}
		parsed.insert(raw)
	}
	*s = parsed
	return nil
}

// MarshalJSON encodes the set as a JSON array of strings.
func (s CfgSet) MarshalJSON() ([]byte, error) {
	if s.entries == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(s.entries)
}

func validateCfgEntry(raw string) error {
	key, quoted, found := strings.Cut(raw, "=")
	if key == "" {
		return fmt.Errorf("cfg entry %q has an empty key", raw)
	}
	if !found {
		return nil
	}
	if len(quoted) < 2 || !strings.HasPrefix(quoted, `"`) || !strings.HasSuffix(quoted, `"`) {
		return fmt.Errorf("cfg entry %q value must be double-quoted", raw)
	}
	return nil
}

// ConvertCfg re-encodes Scarb's generic cfg list into the compiler's native
// set via a structural round trip: serialize the generic form, deserialize
// the native one. This is deliberately the same conversion Scarb itself
// performs, so the two sides agree exactly on what is representable.
//
// Pure: a structurally incompatible list returns an error and no set; the
// caller decides to warn and carry on without cfg information.
func ConvertCfg(entries []scarb.Cfg) (*CfgSet, error) {
	data, err := json.Marshal(entries)
	if err != nil {
		return nil, err
	}
	var set CfgSet
	if err := json.Unmarshal(data, &set); err != nil {
		return nil, err
	}
	return &set, nil
}
