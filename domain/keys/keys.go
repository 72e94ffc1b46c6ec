package keys

import (
	"crypto/md5"
	"fmt"
	"strings"
)

const (
	// PfxHealthCheck is used for prefixing health check redis key
	PfxHealthCheck = "healthcheck"
	// PfxListing is used for prefixing cached upstream listing records
	PfxListing = "listing"
	// PfxListingPage is used for prefixing enriched listing pages
	PfxListingPage = "listingPage"
	// PfxFilterState is used for prefixing persisted filter snapshots
	PfxFilterState = "filterState"
)

// MD5 hashes the data with md5
func MD5(data string) string {
	return fmt.Sprintf("%x", md5.Sum([]byte(data)))
}

// CustomKey is used to join the customized key by componets with specified delimiter
func CustomKey(delimiter string, components ...string) string {
	return strings.Join(components, delimiter)
}

// RedisKey is used to join the redis key by componets
func RedisKey(components ...string) string {
	return CustomKey(":", components...)
}

// GetPrefix extracts the leading component of a key
func GetPrefix(key string) string {
	s := strings.SplitN(key, ":", 2)
	if len(s) > 1 {
		return s[0]
	}
	return ""
}
