package id

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strconv"
	"time"
)

// Generator creates opaque IDs suitable for external references.
type Generator interface {
	NewID() (string, error)
}

// RunIDGenerator yields "<prefix>_<unix-ms base36>_<8 hex>" ids that sort by
// creation time, e.g. ingest_mgu3l2x1_9f2c04aa.
type RunIDGenerator struct {
	prefix string
	now    func() time.Time
}

func NewRunIDGenerator(prefix string) *RunIDGenerator {
	return &RunIDGenerator{prefix: prefix, now: time.Now}
}

func (g *RunIDGenerator) NewID() (string, error) {
	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}

	stamp := strconv.FormatInt(g.now().UnixMilli(), 36)
	if g.prefix == "" {
		return stamp + "_" + hex.EncodeToString(buf), nil
	}
	return g.prefix + "_" + stamp + "_" + hex.EncodeToString(buf), nil
}
