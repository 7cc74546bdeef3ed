package passhash

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashVerify_RoundTrip(t *testing.T) {
	passwords := []string{"pw", "correct horse battery staple", "", "päßwörd"}

	for _, p := range passwords {
		digest, err := Hash(p)
		require.NoError(t, err)
		assert.True(t, Verify(digest, p), "Verify(Hash(%q), %q) must be true", p, p)
	}
}

func TestVerify_WrongPassword(t *testing.T) {
	digest, err := Hash("pw")
	require.NoError(t, err)

	assert.False(t, Verify(digest, "pw2"))
	assert.False(t, Verify(digest, ""))
}

func TestHash_DigestNeverEqualsPlaintext(t *testing.T) {
	digest, err := Hash("secret")
	require.NoError(t, err)
	assert.NotEqual(t, "secret", digest)
}

func TestHash_SelfDescribingAndSalted(t *testing.T) {
	a, err := Hash("same")
	require.NoError(t, err)
	b, err := Hash("same")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(a, "$2a$10$"), "digest must embed algorithm and cost: %s", a)
	assert.NotEqual(t, a, b, "per-call salt must make digests of equal passwords differ")
}

func TestVerify_MalformedDigest(t *testing.T) {
	assert.False(t, Verify("not-a-digest", "pw"))
	assert.False(t, Verify("", "pw"))
}
