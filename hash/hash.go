package hash

import "github.com/zeebo/blake3"

// Size is the size in bytes of a blake3 digest.
const Size = 32

// Sum computes the blake3 digest of the concatenation of chunks.
func Sum(chunks ...[]byte) (rst [Size]byte) {
	hasher := GetHasher()
	defer PutHasher(hasher)
	for _, chunk := range chunks {
		hasher.Write(chunk)
	}
	digest := hasher.Digest()
	digest.Read(rst[:])
	return rst
}

// New returns an unkeyed blake3 hasher.
func New() *blake3.Hasher {
	return blake3.New()
}
