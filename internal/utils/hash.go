package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"unicode/utf16"
)

// TagPaletteSize is the number of colours tags are spread over.
const TagPaletteSize = 6

// TagColorIndex maps a tag to a stable palette slot in [0, n).
//
// The hash is the classic h = h*31 + c over the tag's UTF-16 code units,
// kept in 32 bits, so the same tag gets the same colour in the web pages, the
// terminal client and browser code hashing with charCodeAt.
//
// Example usage:
//
//	class := palette[utils.TagColorIndex("beach", len(palette))]
func TagColorIndex(tag string, n int) int {
	if n <= 0 {
		return 0
	}

	var h uint32
	for _, c := range utf16.Encode([]rune(tag)) {
		h = h*31 + uint32(c)
	}

	return int(h % uint32(n))
}

// HashString computes an HMAC-SHA256 signature over the given string
// using the provided hash key and returns the result as a hex-encoded string.
//
// Used to sign session cookie values so a forged id is rejected before any
// store lookup.
//
// Example usage:
//
//	signature := utils.HashString(sessionID, secret)
func HashString(data string, hashKey string) string {
	return hex.EncodeToString(hashString([]byte(data), hashKey))
}

// EqualHash reports whether signature is the HMAC of data under hashKey,
// in constant time.
func EqualHash(data, signature, hashKey string) bool {
	want := hashString([]byte(data), hashKey)
	got, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}
	return hmac.Equal(want, got)
}

// hashString computes an HMAC-SHA256 digest over the given byte slice
// using the provided hash key.
func hashString(data []byte, hashKey string) []byte {
	hasher := hmac.New(sha256.New, []byte(hashKey))
	hasher.Write(data)
	return hasher.Sum(nil)
}
