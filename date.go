package nb2blog

import (
	"time"

	"github.com/alnah/go-nb2blog/internal/dateutil"
)

// ResolveDate handles "auto" and "auto:FORMAT" syntax for metadata labels.
//   - "auto" → current date in YYYY-MM-DD format
//   - "auto:FORMAT" → custom format (e.g., "auto:mmmm YYYY")
//   - "auto:preset" → named preset (iso, european, us, long, month, blog)
//   - any other value → returned unchanged
//
// The time parameter allows injecting a fixed time for testing.
func ResolveDate(value string, t time.Time) (string, error) {
	return dateutil.ResolveDate(value, t)
}
