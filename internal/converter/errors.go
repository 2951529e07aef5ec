package converter

import (
	"errors"
	"fmt"
)

var (
	ErrInputDirectoryNotFound  = errors.New("the specified input directory does not exist")
	ErrOutputDirectoryNotFound = errors.New("the directory for the output file does not exist")
	ErrNoInputFiles            = errors.New("no input files found")

	// ErrWriteOutput wraps failures to write the output document. They stop the conversion.
	ErrWriteOutput = errors.New("failed to write output")
)

// ConfigurationError is returned when the conversion cannot start.
// Nothing is written when it is returned.
type ConfigurationError struct {
	Path string
	Err  error
}

func (e *ConfigurationError) Error() string {
	if e.Path == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %s", e.Err, e.Path)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// FileError is a failure to read or parse one input file.
// Other files are still converted.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("process %s: %s", e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}
