//go:build !unix

package sandbox

import (
	"os"

	"github.com/puzpuzpuz/xsync/v3"
)

// Process groups are a POSIX capability; other platforms fall back to
// the portable strategy selected in New.
func newGroupRunner(_ Config, _ *xsync.MapOf[string, *os.Process]) (Runner, bool) {
	return nil, false
}
