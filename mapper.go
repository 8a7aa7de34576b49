package nanorm

// RowMapper is the mapping contract: a type that can construct itself from
// the current row of a [Cursor]. MapRow reads whatever columns it needs
// through the cursor's typed accessors and must not advance the cursor;
// advancing belongs to the executor.
//
// The contract is carried by the pointer receiver so that [Query] and
// [QuerySingle] can allocate a zero T and fill it in place. Dispatch is
// resolved by the compiler for each concrete type; there is no runtime
// registry and no reflection.
type RowMapper interface {
	MapRow(c *Cursor) error
}

// Mappable constrains a type parameter pair to "pointer to T implementing
// [RowMapper]". Callers of [Query] and [QuerySingle] name only T; the
// pointer type is inferred.
type Mappable[T any] interface {
	*T
	RowMapper
}
