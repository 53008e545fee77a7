package room

import (
	"math/rand/v2"

	"github.com/google/uuid"
)

const (
	codeLength = 6
	// Visually confusable characters (0/O/1/I) are excluded.
	codeChars = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
)

// NewCode generates a random 6-character room code. Uniqueness is the
// caller's job: the engine checks the store and retries on collision.
func NewCode() string {
	code := make([]byte, codeLength)
	for i := range code {
		code[i] = codeChars[rand.IntN(len(codeChars))]
	}
	return string(code)
}

// NewPlayerID generates an opaque player id, unique for the lifetime of
// the room.
func NewPlayerID() string {
	return "p_" + uuid.NewString()
}
