// Package sha256 implements the SHA-256 hash algorithm of FIPS 180-4
// from first principles: message padding, block segmentation, message
// schedule expansion, the 64-round compression function, and digest
// serialization are all written out in plain Go without delegating to
// crypto/sha256. The package exists for studying and instrumenting the
// algorithm; callers that only need a digest should prefer the
// standard library.
//
// The whole computation is a pure function over the input bytes:
//
//	digest := sha256.Sum([]byte("abc"))
//	fmt.Println(digest)
//	// ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad
//
// Every call is independent and allocates its own state, so concurrent
// calls need no coordination. The implementation hashes its input in
// one shot; it does not provide incremental (streaming) hashing.
package sha256
