package ports

// Scaffolder creates the on-disk layout for a new project.
//
//go:generate go run go.uber.org/mock/mockgen -source=scaffolder.go -destination=mocks/mock_scaffolder.go -package=mocks
type Scaffolder interface {
	// Create scaffolds a new project at the given path and returns the
	// created project directory. Existing files are overwritten without
	// confirmation.
	Create(name string) (string, error)
}
