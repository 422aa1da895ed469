package config

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// TrustAllProxies is the hop count for "true": every X-Forwarded-For entry
// is trusted and the leftmost one is taken as the client.
const TrustAllProxies = math.MaxInt32

// ParseTrustProxy resolves the trust-proxy setting into the number of
// reverse-proxy hops whose forwarding headers are trusted. An empty value
// trusts one hop in production and none otherwise; "true" trusts all hops.
func ParseTrustProxy(value string, production bool) (int, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	switch v {
	case "":
		if production {
			return 1, nil
		}
		return 0, nil
	case "true":
		return TrustAllProxies, nil
	case "false":
		return 0, nil
	}

	hops, err := strconv.Atoi(v)
	if err != nil || hops < 0 {
		return 0, fmt.Errorf("invalid trust proxy value %q", value)
	}
	return hops, nil
}
