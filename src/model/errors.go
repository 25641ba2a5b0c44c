package model

import "fmt"

// InputError reports empty or unusable requirement text. Analysis continues
// with empty entities; the error is recorded as a warning on the result.
type InputError struct {
	Source  string
	Message string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("input error (%s): %s", e.Source, e.Message)
}

// AugmentationFailure reports that the AI stage could not enrich a result.
// It is recovered inside the augmentation adapter and only shows up as the
// degraded marker.
type AugmentationFailure struct {
	Provider string
	Err      error
}

func (e *AugmentationFailure) Error() string {
	return fmt.Sprintf("augmentation via %s failed: %v", e.Provider, e.Err)
}

func (e *AugmentationFailure) Unwrap() error {
	return e.Err
}

// ConfigurationError reports an invalid request or configuration value
type ConfigurationError struct {
	Field   string
	Message string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error (%s): %s", e.Field, e.Message)
}
