package artgen

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"
)

// Fingerprint returns the lowercase hex SHA-256 digest of content.
// Identical content always maps to the identical fingerprint, which
// makes the fingerprint usable both as a dedup signal and as the seed
// for rarity and art derivation.
func Fingerprint(content []byte) string {
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:])
}

// FingerprintBytes returns the raw digest for use as an art seed.
func FingerprintBytes(content []byte) []byte {
	sum := sha256.Sum256(content)
	return sum[:]
}

// TokenURI derives an ipfs:// URI for content using a CIDv1 with the
// raw codec and a sha2-256 multihash. Nothing is published anywhere;
// the URI is a stable stand-in for the metadata pointer a real mint
// would put on chain.
func TokenURI(content []byte) string {
	sum, err := multihash.Sum(content, multihash.SHA2_256, -1)
	if err != nil {
		// multihash.Sum cannot fail for SHA2_256 with default length
		return ""
	}
	return "ipfs://" + cid.NewCidV1(cid.Raw, sum).String()
}
