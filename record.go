package voicesearch

// Field selects one positional field of a Record.
type Field int

// Record is an immutable tuple of plain-text fields. The meaning of each
// position is fixed per dataset (for example name, address, cuisine, dishes).
type Record []string

// Get returns the text of field f, or "" when the record has no such position.
func (r Record) Get(f Field) string {
	if f < 0 || int(f) >= len(r) {
		return ""
	}
	return r[f]
}

// Clone returns a copy of the record that shares no memory with r.
func (r Record) Clone() Record {
	if r == nil {
		return nil
	}
	out := make(Record, len(r))
	copy(out, r)
	return out
}
