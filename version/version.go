package version

// VERSION is overridden at build time, e.g.:
//
//	go build -ldflags "-X github.com/JiscSD/csw-simple-metadata/version.VERSION=v1.0.0"
var VERSION = "(devel)"
