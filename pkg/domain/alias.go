package domain

// AliasMap maps an incoming intent name to a single canonical intent name.
// It is consulted before membership testing: a descriptor matches an
// incoming intent if the incoming name or its mapped name is present in the
// descriptor's intent list, with the mapped name checked first.
type AliasMap map[string]string

// Resolve returns the mapped intent name and whether a mapping exists.
func (m AliasMap) Resolve(intent string) (string, bool) {
	mapped, ok := m[intent]
	return mapped, ok
}

// Clone returns an independent copy of the alias map.
func (m AliasMap) Clone() AliasMap {
	out := make(AliasMap, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
