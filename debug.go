package warp

import (
	"fmt"
	"os"
)

// debugf prints a "[warp]"-prefixed line to stderr. Callers check their own
// debug flag first so disabled logging costs nothing in the tick path.
func debugf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, "[warp] "+format+"\n", args...)
}
