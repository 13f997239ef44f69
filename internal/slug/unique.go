package slug

import (
	"context"
	"fmt"
)

// MaxSuffix is the last numeric suffix tried before falling back to a
// timestamp suffix.
const MaxSuffix = 100

// Probe reports whether candidate is already taken and, if so, whether the
// holder is the very record being resolved (in which case it is reused).
type Probe func(ctx context.Context, candidate string) (taken, same bool, err error)

// Unique returns base, or base-1, base-2, ... until probe reports a free or
// reusable candidate.
func Unique(ctx context.Context, base string, probe Probe) (string, error) {
	for i := 0; i <= MaxSuffix; i++ {
		candidate := base
		if i > 0 {
			candidate = fmt.Sprintf("%s-%d", base, i)
		}

		taken, same, err := probe(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("probe slug %q: %w", candidate, err)
		}
		if !taken || same {
			return candidate, nil
		}
	}

	return fmt.Sprintf("%s-%d", base, now()), nil
}
