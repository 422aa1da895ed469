package http

import (
	"net"
	"net/http"
	"strings"
)

const forwardedForHeader = "X-Forwarded-For"

// clientIP walks the address chain from the socket peer back through
// X-Forwarded-For, one entry per trusted hop, and returns the first address
// that is not a trusted proxy. With zero hops it is the socket peer; with
// more hops than entries it is the leftmost entry. A malformed entry stops
// the walk at the last trusted address.
func clientIP(r *http.Request, trustedHops int) string {
	addr := remoteHost(r.RemoteAddr)
	if trustedHops <= 0 {
		return addr
	}

	chain := forwardedChain(r.Header)
	for i := len(chain) - 1; i >= 0 && trustedHops > 0; i-- {
		if net.ParseIP(chain[i]) == nil {
			break
		}
		addr = chain[i]
		trustedHops--
	}
	return addr
}

func remoteHost(remoteAddr string) string {
	if host, _, err := net.SplitHostPort(remoteAddr); err == nil {
		return host
	}
	return remoteAddr
}

// forwardedChain flattens every X-Forwarded-For header into one list,
// leftmost (original client) first.
func forwardedChain(h http.Header) []string {
	var chain []string
	for _, v := range h.Values(forwardedForHeader) {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				chain = append(chain, part)
			}
		}
	}
	return chain
}

// rateLimitKey canonicalizes the client address. IPv6 clients share a /64
// bucket, as a single host usually owns the whole prefix.
func rateLimitKey(addr string) string {
	ip := net.ParseIP(addr)
	if ip == nil {
		return addr
	}
	if v4 := ip.To4(); v4 != nil {
		return v4.String()
	}
	return ip.Mask(net.CIDRMask(64, 128)).String()
}

func (h *Handler) keyByClientIP(r *http.Request) (string, error) {
	return rateLimitKey(clientIP(r, h.trustProxy)), nil
}
