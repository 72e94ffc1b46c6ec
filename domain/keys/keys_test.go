package keys

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKeys(t *testing.T) {
	req := require.New(t)
	req.Equal("listing:42", RedisKey(PfxListing, "42"))
	req.Equal("listing", GetPrefix(RedisKey(PfxListing, "42")))
	req.Equal("", GetPrefix("plain"))
	req.Len(MD5("0xabc"), 32)
}
