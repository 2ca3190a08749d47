package mango

// Solana public keys are 32 bytes rendered as base58, which lands in
// the 32-44 character range.
const (
	minPubkeyLen = 32
	maxPubkeyLen = 44
)

const base58Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

var base58Set = func() [256]bool {
	var set [256]bool
	for i := 0; i < len(base58Alphabet); i++ {
		set[base58Alphabet[i]] = true
	}
	return set
}()

// IsValidPublicKey reports whether s is a plausible base58 public key.
// It checks shape only; on-chain existence is ValidateAccount's job.
func IsValidPublicKey(s string) bool {
	if len(s) < minPubkeyLen || len(s) > maxPubkeyLen {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !base58Set[s[i]] {
			return false
		}
	}
	return true
}
