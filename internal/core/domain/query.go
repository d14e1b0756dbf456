package domain

// Query is a SQL statement loaded from a query file. The text is treated as
// opaque; the fingerprint identifies the exact text so that a cached result
// is never served for an edited query.
type Query struct {
	Name        string
	Text        string
	Fingerprint string
}
