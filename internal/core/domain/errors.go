package domain

import "go.trai.ch/zerr"

var (
	// ErrRootNotFound is returned when no ancestor directory contains the
	// marker configuration file.
	ErrRootNotFound = zerr.New("project root not found")

	// ErrConfigNotFound is returned when the marker file is absent from the
	// resolved project root.
	ErrConfigNotFound = zerr.New("configuration file not found")

	// ErrMissingField is returned when a mandatory configuration field is
	// absent.
	ErrMissingField = zerr.New("missing field")

	// ErrEmptyCommand is returned when a command string tokenizes to nothing.
	ErrEmptyCommand = zerr.New("command string is empty")

	// ErrTaskNotFound is returned when a requested task is not defined.
	ErrTaskNotFound = zerr.New("task not found")

	// ErrMissingDirectory is returned when a required project subdirectory
	// does not exist.
	ErrMissingDirectory = zerr.New("required directory not found")

	// ErrNotADirectory is returned when a required subdirectory path exists
	// but is not a directory.
	ErrNotADirectory = zerr.New("path is not a directory")

	// ErrMissingFile is returned when a required project file does not exist.
	ErrMissingFile = zerr.New("required file not found")

	// ErrNotAFile is returned when a required file path exists but is not a
	// regular file.
	ErrNotAFile = zerr.New("path is not a file")
)
