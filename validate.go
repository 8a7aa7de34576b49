package nanorm

// checkArgs guards every entry point. It runs before any command is
// allocated, so a failing call performs no I/O at all.
func checkArgs(p Preparer, query string) error {
	if p == nil {
		return ErrNilPreparer
	}
	if query == "" {
		return ErrEmptyQuery
	}
	return nil
}
