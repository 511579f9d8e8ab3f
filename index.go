package dynaquery

// Index projection modes, controlling which attributes a secondary index
// carries.
const (
	ProjectionAll      = "ALL"
	ProjectionKeysOnly = "KEYS_ONLY"
	ProjectionInclude  = "INCLUDE"
)

// IndexKind distinguishes global from local secondary indexes.
type IndexKind string

const (
	IndexKindGlobal IndexKind = "global"
	IndexKindLocal  IndexKind = "local"
)

// Index describes a secondary index and the table that owns it. Operations
// constructed against an Index execute against the owning table with the
// index name set on every request.
type Index struct {
	Name       string
	Table      *Table
	Kind       IndexKind
	Projection string
	HashKey    *KeyField // overrides the table hash key; required for global indexes
	RangeKey   *KeyField // optional index range key
}

// GlobalIndex creates a global secondary index descriptor on the given table.
func GlobalIndex(name string, table *Table, hashKey KeyField) *Index {
	return &Index{
		Name:       name,
		Table:      table,
		Kind:       IndexKindGlobal,
		Projection: ProjectionAll,
		HashKey:    &hashKey,
	}
}

// LocalIndex creates a local secondary index descriptor on the given table.
// Local indexes share the table's hash key and declare their own range key.
func LocalIndex(name string, table *Table, rangeKey KeyField) *Index {
	return &Index{
		Name:       name,
		Table:      table,
		Kind:       IndexKindLocal,
		Projection: ProjectionAll,
		RangeKey:   &rangeKey,
	}
}

// WithRangeKey sets the index range key and returns the index.
func (ix *Index) WithRangeKey(key KeyField) *Index {
	ix.RangeKey = &key
	return ix
}

// WithProjection sets the index projection mode and returns the index.
func (ix *Index) WithProjection(projection string) *Index {
	ix.Projection = projection
	return ix
}

// KeyFields returns the index key fields in schema order. Fields not
// overridden by the index fall back to the owning table's schema.
func (ix *Index) KeyFields() []KeyField {
	hash := ix.Table.HashKey
	if ix.HashKey != nil {
		hash = *ix.HashKey
	}
	fields := []KeyField{hash}
	if ix.RangeKey != nil {
		fields = append(fields, *ix.RangeKey)
	}
	return fields
}
