package redis

import (
	"fmt"

	"github.com/mcoot/frogfen/internal/model"
)

// Key prefix for all game-related data
const keyPrefix = "frogfen"

// sessionKey returns the Redis key for a Session
func sessionKey(id model.SessionID) string {
	return fmt.Sprintf("%s:session:%s", keyPrefix, id)
}

// sessionsForSeedIndexKey returns the Redis key for the SET of sessions sharing a seed
func sessionsForSeedIndexKey(seed string) string {
	return fmt.Sprintf("%s:idx:sessions_for_seed:%s", keyPrefix, seed)
}

// dictionaryKey returns the Redis key for the dictionary word set
func dictionaryKey() string {
	return fmt.Sprintf("%s:dictionary", keyPrefix)
}
