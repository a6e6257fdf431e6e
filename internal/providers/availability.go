package providers

import (
	"strings"

	"github.com/gaugelab/gaugechat/internal/config"
)

// MissingKeys returns the required environment variables of d that have no
// value in store, in the order the descriptor declares them.
func MissingKeys(d Descriptor, store config.Store) []string {
	var missing []string
	for _, key := range d.Env {
		if store.Get(key) == "" {
			missing = append(missing, key)
		}
	}
	return missing
}

// ResolveAvailability computes the enabled state of every catalogued
// provider against the live store. It is recomputed on each call and never
// cached: credentials may be injected into the environment at runtime.
func ResolveAvailability(store config.Store) []Availability {
	out := make([]Availability, 0, len(catalog))
	for _, d := range catalog {
		missing := MissingKeys(d, store)
		if len(missing) == 0 {
			out = append(out, Availability{Descriptor: d, Enabled: true})
			continue
		}
		out = append(out, Availability{
			Descriptor:     d,
			Enabled:        false,
			DisabledReason: "Missing environment variables: " + strings.Join(missing, ", "),
		})
	}
	return out
}
