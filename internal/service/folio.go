package service

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// GenerateFolio builds the shareable order reference: millisecond timestamp
// in base36 plus 4 random bytes. The unique index on orders.folio is the
// backstop if two generations ever collide.
func GenerateFolio() string {
	ts := strconv.FormatInt(time.Now().UnixMilli(), 36)

	suffix := make([]byte, 4)
	if _, err := rand.Read(suffix); err != nil {
		// crypto/rand failing means the process is in serious trouble; fall
		// back to the nanosecond clock rather than handing out an error for
		// a reference code.
		return fmt.Sprintf("LS-%s-%d", strings.ToUpper(ts), time.Now().UnixNano()%0xFFFF)
	}

	return fmt.Sprintf("LS-%s-%s", strings.ToUpper(ts), strings.ToUpper(hex.EncodeToString(suffix)))
}
