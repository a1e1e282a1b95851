package metadata

import "strings"

var accessPointProtocols = []string{
	"W3C:REST",
	"W3C:WS",
}

var networkServiceProtocols = []string{
	"OGC:WMS",
	"OGC:WFS",
	"OGC:WCS",
	"OGC:WMTS",
	"OGC:CSW",
	"OGC:SOS",
	"OGC:WPS",
	"W3C:AtomFeed",
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

// IsAccessPoint reports whether an online resource protocol identifies an
// access point, e.g. "W3C:REST".
func IsAccessPoint(protocol string) bool {
	return hasAnyPrefix(protocol, accessPointProtocols)
}

// IsNetworkService reports whether an online resource protocol identifies a
// network service, e.g. "OGC:WMS".
func IsNetworkService(protocol string) bool {
	return hasAnyPrefix(protocol, networkServiceProtocols)
}
