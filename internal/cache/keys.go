package cache

import "fmt"

// Cache key prefixes.
const (
	PrefixCatalog = "catalog:"
	PrefixPoller  = "poller:"
)

// MakeCatalogKey creates a cache key for the latest catalog of a source.
func MakeCatalogKey(nodeID, source string) string {
	return fmt.Sprintf("%s%s:%s", PrefixCatalog, nodeID, source)
}

// MakePollerKey creates a cache key for the latest result of a poller command.
func MakePollerKey(nodeID, command string) string {
	return fmt.Sprintf("%s%s:%s", PrefixPoller, nodeID, command)
}

