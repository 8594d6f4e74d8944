package storage

// ConstraintError reports a uniqueness or foreign-key violation on a
// mutation: the store refused the write, the data is unchanged.
type ConstraintError struct {
	Err error
}

func (e *ConstraintError) Error() string { return "constraint violation: " + e.Err.Error() }
func (e *ConstraintError) Unwrap() error { return e.Err }

// StorageError reports a failure of the underlying store. It carries the
// engine's message and is never swallowed or retried by this layer.
type StorageError struct {
	Err error
}

func (e *StorageError) Error() string { return "storage: " + e.Err.Error() }
func (e *StorageError) Unwrap() error { return e.Err }
