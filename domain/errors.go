package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the full error taxonomy. Callers match with errors.Is;
// the typed errors below carry the structured details.
var (
	ErrPlayerNotFound    = errors.New("player not found")
	ErrNetwork           = errors.New("network error")
	ErrStatsAPI          = errors.New("stats api error")
	ErrNewsAPI           = errors.New("news api error")
	ErrMissingCredential = errors.New("missing credential")
	ErrConfiguration     = errors.New("configuration error")
	ErrValidation        = errors.New("validation error")
)

// PlayerNotFoundError is returned when the stats source has no player
// matching the queried name.
type PlayerNotFoundError struct {
	Name string
}

func (e *PlayerNotFoundError) Error() string {
	return fmt.Sprintf("player %q not found", e.Name)
}

func (e *PlayerNotFoundError) Is(target error) bool {
	return target == ErrPlayerNotFound
}

// NetworkError wraps a transport-level failure from either source.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

func (e *NetworkError) Is(target error) bool {
	return target == ErrNetwork
}

// StatsAPIError is a non-success response from the stats source with the
// upstream status and message preserved.
type StatsAPIError struct {
	Status  int
	Message string
}

func (e *StatsAPIError) Error() string {
	return fmt.Sprintf("stats api error: %d - %s", e.Status, e.Message)
}

func (e *StatsAPIError) Is(target error) bool {
	return target == ErrStatsAPI
}

// NewsAPIError is a non-success response from the news source.
type NewsAPIError struct {
	Status  int
	Message string
}

func (e *NewsAPIError) Error() string {
	return fmt.Sprintf("news api error: %d - %s", e.Status, e.Message)
}

func (e *NewsAPIError) Is(target error) bool {
	return target == ErrNewsAPI
}

// MissingCredentialError is returned when a required configuration value
// is absent.
type MissingCredentialError struct {
	Key string
}

func (e *MissingCredentialError) Error() string {
	return fmt.Sprintf("missing credential: %s", e.Key)
}

func (e *MissingCredentialError) Is(target error) bool {
	return target == ErrMissingCredential
}
