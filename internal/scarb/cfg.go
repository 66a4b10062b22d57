package scarb

import (
	"encoding/json"
	"fmt"
)

// Cfg is a single conditional-compilation entry in Scarb's textual grammar:
//
//	"unix"                a bare name
//	"target=\"lib\""      a key/value pair, value always double-quoted
//
// The entry is kept as the raw string. Scarb's side of the contract is only
// "a list of strings"; whether an entry also satisfies the compiler's
// stricter grammar is decided downstream, when the list is converted into
// the compiler's native cfg set. A malformed entry must degrade that one
// conversion, not fail the whole metadata decode.
type Cfg struct {
	raw string
}

// NamedCfg returns a bare-name cfg entry.
func NamedCfg(key string) Cfg {
	return Cfg{raw: key}
}

// KeyValueCfg returns a key/value cfg entry.
func KeyValueCfg(key, value string) Cfg {
	return Cfg{raw: fmt.Sprintf("%s=%q", key, value)}
}

// RawCfg returns an entry holding raw verbatim, bypassing the grammar.
func RawCfg(raw string) Cfg {
	return Cfg{raw: raw}
}

// String returns the entry's raw textual form.
func (c Cfg) String() string {
	return c.raw
}

// MarshalJSON encodes the entry as its raw JSON string.
func (c Cfg) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.raw)
}

// UnmarshalJSON accepts any JSON string.
func (c *Cfg) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &c.raw)
}
