package resumes

import gonanoid "github.com/matoous/go-nanoid/v2"

// PublicIDLength is the fixed length of public resume identifiers.
const PublicIDLength = 8

// PublicIDAlphabet is the URL-safe alphabet public IDs are drawn from.
// 64^8 values make collisions negligible at expected record volume; the
// repository's uniqueness constraint catches the rest.
const PublicIDAlphabet = "-_0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// NewPublicID generates a short opaque identifier from a cryptographically
// strong random source. It does not consult existing records.
func NewPublicID() (string, error) {
	return gonanoid.Generate(PublicIDAlphabet, PublicIDLength)
}
