package logger

import (
	"errors"
	"fmt"
	"os"
)

var (
	// ErrAppNameIsEmpty is returned if Log.AppName was not defined.
	ErrAppNameIsEmpty = errors.New("config Log.AppName can not be empty")

	// ErrServiceNameIsEmpty is returned if Log.ServiceName was not defined.
	ErrServiceNameIsEmpty = errors.New("config Log.ServiceName can not be empty")

	// ErrDataDogAPIKeyIsEmpty is returned if the datadog logger is enabled without an api key.
	ErrDataDogAPIKeyIsEmpty = errors.New("config Log.DataDog.APIKey can not be empty when datadog is enabled")
)

// ErrorHandler reports events none of the writers accepted on stderr and counts them.
func ErrorHandler(err error) {
	if writeErrors != nil {
		writeErrors.Inc()
	}

	_, _ = fmt.Fprintf(os.Stderr, "logger: dropped event: %v\n", err)
}
