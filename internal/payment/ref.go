package payment

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const externalRefPrefix = "payment"

// NewExternalRef returns a correlation reference of the form
// payment_<unix millis>_<12 hex chars>. The random suffix comes from a v4 UUID
// so concurrent initiations within the same millisecond do not collide.
func NewExternalRef(now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	return fmt.Sprintf("%s_%d_%s", externalRefPrefix, now.UnixMilli(), suffix)
}
