package reporting

import (
	"context"
	"errors"
	"log/slog"
	"regexp"

	"github.com/daguenette/statbook/internal/logging"
	"github.com/getsentry/sentry-go"
)

// apiKeyRx matches apiKey-style query parameters so credentials never end up
// in an error fingerprint or event.
var apiKeyRx = regexp.MustCompile(`(?i)(apikey|api_key|api-key)=[^&\s"']+`)

func sanitizeError(err string) string {
	return apiKeyRx.ReplaceAllString(err, "$1=<redacted>")
}

// Report sends err to Sentry when a hub is present in ctx. The library never
// initializes Sentry itself; consumers that want reporting attach a hub to
// the context they pass in.
func Report(ctx context.Context, err error, extras ...map[string]string) {
	hub := sentry.GetHubFromContext(ctx)
	logger := logging.FromContext(ctx)
	if hub == nil {
		logger.Debug("No Sentry hub in context, skipping error report", "error", err)
		return
	}

	logger.Error(
		"Reporting error to Sentry",
		slog.String("error", err.Error()),
		slog.Any("extras", extras),
	)

	hub.WithScope(func(scope *sentry.Scope) {
		meta := MetaFromContext(ctx)
		scope.SetTags(meta.tags)
		for key, value := range meta.extras {
			scope.SetExtra(key, value)
		}

		for _, extra := range extras {
			if extra == nil {
				continue
			}
			for key, value := range extra {
				scope.SetExtra(key, sanitizeError(value))
			}
		}

		if err == nil {
			err = errors.New("No error provided")
		}

		scope.SetFingerprint([]string{"{{ default }}", sanitizeError(err.Error())})
		hub.CaptureException(err)
	})
}
