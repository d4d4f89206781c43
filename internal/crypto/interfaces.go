package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/sealer_mock.go -package=mock

// Sealer protects values that leave the process, such as web sessions
// stored in Redis. It knows nothing about sessions or the network.
//
// Схема работы:
//
//	key  = HKDF-SHA256(secret, info)      (once, at construction)
//	blob = base64(nonce || AES-GCM(key, json(v)))
type Sealer interface {
	// Seal serializes v to JSON and encrypts it. The returned string is
	// safe to store in an untrusted place.
	Seal(v any) (string, error)

	// Open decrypts a blob produced by Seal and unmarshals it into target
	// (same contract as json.Unmarshal). Fails when the blob was sealed
	// with another key or was tampered with.
	Open(blob string, target any) error
}
