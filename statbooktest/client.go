// Package statbooktest provides mock-backed clients for consumer tests.
package statbooktest

import (
	"github.com/daguenette/statbook"
	"github.com/daguenette/statbook/newsprovider"
	"github.com/daguenette/statbook/statsprovider"
)

// NewMockClient returns a client backed by the default mock providers
// (josh-allen and tom-brady data), useful as a drop-in for tests that do not
// care about the exact fixture.
func NewMockClient() *statbook.Client {
	return statbook.NewClientWithProviders(
		statsprovider.NewMockStatsProviderWithDefaults(),
		newsprovider.NewMockNewsProviderWithDefaults(),
	)
}

// NewMockClientWith returns a client backed by the given mock providers for
// tests that need custom fixtures or failure injection.
func NewMockClientWith(statsProvider *statsprovider.MockStatsProvider, newsProvider *newsprovider.MockNewsProvider) *statbook.Client {
	return statbook.NewClientWithProviders(statsProvider, newsProvider)
}
