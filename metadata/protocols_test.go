package metadata

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProtocols(t *testing.T) {
	tests := []struct {
		protocol       string
		accessPoint    bool
		networkService bool
	}{
		{"W3C:REST", true, false},
		{"W3C:WS", true, false},
		{"OGC:WMS", false, true},
		{"OGC:WMS-1.3.0-http-get-map", false, true},
		{"OGC:WFS", false, true},
		{"W3C:AtomFeed", false, true},
		{"WWW:DOWNLOAD-1.0-http--download", false, false},
		{"", false, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.accessPoint, IsAccessPoint(tt.protocol), tt.protocol)
		assert.Equal(t, tt.networkService, IsNetworkService(tt.protocol), tt.protocol)
	}
}
