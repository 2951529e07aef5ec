package converter

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigurationError(t *testing.T) {
	tests := []struct {
		name string
		err  *ConfigurationError
		want string
	}{
		{
			name: "with path",
			err:  &ConfigurationError{Path: "/tmp/missing", Err: ErrInputDirectoryNotFound},
			want: "the specified input directory does not exist: /tmp/missing",
		},
		{
			name: "without path",
			err:  &ConfigurationError{Err: errors.New("invalid configuration")},
			want: "invalid configuration",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
			assert.ErrorIs(t, tt.err, tt.err.Err)
		})
	}
}

func TestFileError(t *testing.T) {
	err := &FileError{Path: "a.dsl", Err: ErrWriteOutput}

	assert.Equal(t, "process a.dsl: failed to write output", err.Error())
	assert.ErrorIs(t, err, ErrWriteOutput)
}
