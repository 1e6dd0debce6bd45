package export

// Copyright by Eric S. Raymond
// SPDX-License-Identifier: BSD-2-Clause

import (
	"fmt"
	"io"
	"os"
)

// logWriter mirrors rcs's package-level logging sink: stderr by default,
// swappable in tests. Kept separate from rcs's logWriter (different
// package, same convention) so each package's tests can redirect its
// own chatter independently.
var logWriter io.Writer = os.Stderr

func logit(format string, args ...interface{}) {
	fmt.Fprintf(logWriter, "rcs-fast-export: "+format+"\n", args...)
}
