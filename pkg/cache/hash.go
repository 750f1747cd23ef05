package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// hashKey derives a cache key of the form "prefix:digest". The parts are
// serialized as JSON before hashing, so a layout keyed on its device hash
// plus fan-out options changes key whenever either changes. The full
// 256-bit digest is kept; layouts for different option sets must never
// collide onto one entry.
func hashKey(prefix string, parts ...interface{}) string {
	data, _ := json.Marshal(parts)
	sum := sha256.Sum256(data)
	return prefix + ":" + hex.EncodeToString(sum[:])
}

// Hash returns the hex SHA-256 digest of data. Device files are hashed
// this way so cache keys track the file content, not its path or mtime.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
