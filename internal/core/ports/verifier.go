package ports

// Verifier asserts the structural layout of a project root.
//
//go:generate go run go.uber.org/mock/mockgen -source=verifier.go -destination=mocks/mock_verifier.go -package=mocks
type Verifier interface {
	// Verify checks the fixed required directories, then the required
	// (directory, file) pairs, in order, failing fast on the first
	// violation. Only presence and file-type are checked, never contents.
	Verify(root string) error
}
