package policy

//go:generate mockgen -source source.go -destination mock_source_test.go -package policy

// Source is the part of a result container the checks read. Both a container
// value and a pointer to it are expected to satisfy it; checks never mutate
// the source.
type Source[E any] interface {
	// HasValue reports whether a success value is stored
	HasValue() bool
	// HasError reports whether a failure value is stored
	HasError() bool
	// AssumeError returns the stored failure without checking state
	AssumeError() E
}
