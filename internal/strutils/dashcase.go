package strutils

import "strings"

// ToDashCase normalizes a player name to the dash-separated lowercase form
// used as the player identifier by the upstream APIs ("Josh Allen" ->
// "josh-allen"). Already-normalized identifiers pass through unchanged.
func ToDashCase(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), "-"))
}
