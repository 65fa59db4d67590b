package services

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/custodia-labs/egress-cli/internal/core/domain"
)

// stairNamespace scopes name-based stair IDs.
var stairNamespace = uuid.NewSHA1(uuid.NameSpaceOID, []byte("egress.stair"))

// StairID returns the stable ID of the stair anchored at anchor. The same
// anchor yields the same ID on every run.
func StairID(anchor domain.Identity) string {
	return uuid.NewSHA1(stairNamespace, []byte(anchor.Key())).String()
}

// stairIDAt returns the ID of the nth stair sharing anchor. Stairs after the
// first at one anchor need distinct IDs.
func stairIDAt(anchor domain.Identity, n int) string {
	if n <= 1 {
		return StairID(anchor)
	}
	return uuid.NewSHA1(stairNamespace, []byte(fmt.Sprintf("%s#%d", anchor.Key(), n))).String()
}

// newID returns a random ID for runs and override records.
func newID() string {
	return uuid.NewString()
}
