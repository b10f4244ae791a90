package entity

import "strings"

// SecretFormat tags how a stored secret is encoded.
type SecretFormat string

const (
	// SecretFormatBcrypt marks a secret stored as a bcrypt hash.
	SecretFormatBcrypt SecretFormat = "bcrypt"

	// SecretFormatLegacy marks a secret still stored as plaintext, left over
	// from before hashing was introduced. Legacy secrets are upgraded in place
	// on the first successful authentication.
	SecretFormatLegacy SecretFormat = "legacy"
)

// bcryptPrefixes are the self-describing tags of the bcrypt encoding. Anything
// that does not start with one of these is treated as legacy plaintext.
var bcryptPrefixes = []string{"$2a$", "$2b$", "$2y$"}

// StoredSecret is a stored secret together with its recognized format.
// The classification happens exactly once, when the record is loaded, so the
// rest of the code never re-inspects the raw string.
type StoredSecret struct {
	format SecretFormat
	value  string
}

// ParseStoredSecret classifies a raw stored secret by its encoding tag.
func ParseStoredSecret(raw string) StoredSecret {
	for _, prefix := range bcryptPrefixes {
		if strings.HasPrefix(raw, prefix) {
			return StoredSecret{format: SecretFormatBcrypt, value: raw}
		}
	}

	return StoredSecret{format: SecretFormatLegacy, value: raw}
}

// NewHashedSecret wraps an already-hashed value produced by the password hasher.
func NewHashedSecret(hash string) StoredSecret {
	return StoredSecret{format: SecretFormatBcrypt, value: hash}
}

// IsHashed reports whether the secret carries a recognized hash tag.
func (s StoredSecret) IsHashed() bool {
	return s.format == SecretFormatBcrypt
}

// Format returns the classified format of the secret.
func (s StoredSecret) Format() SecretFormat {
	return s.format
}

// Value returns the raw stored value (hash or legacy plaintext).
func (s StoredSecret) Value() string {
	return s.value
}

// IsZero reports whether the secret has been redacted or never set.
func (s StoredSecret) IsZero() bool {
	return s.value == "" && s.format == ""
}
