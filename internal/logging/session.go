package logging

import (
	"crypto/rand"
	"encoding/hex"
	"time"
)

// GenerateConnID returns an identifier for a bridge connection: the accept
// time (HHMMSS) and 4 random hex chars, e.g. "205106_a7b3".
func GenerateConnID() string {
	random := make([]byte, 2)
	_, _ = rand.Read(random)
	return time.Now().Format("150405") + "_" + hex.EncodeToString(random)
}
