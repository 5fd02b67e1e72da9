package scheduling

import (
	"fmt"
	"time"
)

// ===============================
// Chaves de cache
// ===============================

// util:<businessID>:<data local>:<range>:<tz>
func snapshotKey(businessID uint, day time.Time, rng string, tz string) string {
	return fmt.Sprintf("%s%s:%s:%s", snapshotPrefix(businessID), day.Format("2006-01-02"), rng, tz)
}

func snapshotPrefix(businessID uint) string {
	return fmt.Sprintf("util:%d:", businessID)
}

func snapshotPeriodPrefix(businessID uint, day time.Time) string {
	return snapshotPrefix(businessID) + day.Format("2006-01-02")
}
