package export

// Filesystem helpers used by the CLI glue.
// Adapted from the teacher's surgeon/shared.go Python-os.path-alike helpers.

// Copyright by Eric S. Raymond
// SPDX-License-Identifier: BSD-2-Clause

import "os"

// Exists reports whether pathname names anything at all on disk.
func Exists(pathname string) bool {
	_, err := os.Stat(pathname)
	return !os.IsNotExist(err)
}

// IsDir reports whether pathname names a directory.
func IsDir(pathname string) bool {
	st, err := os.Stat(pathname)
	return err == nil && st.Mode().IsDir()
}

// IsExecutable reports the owner-executable bit the CLI glue uses to set
// RcsFile.Executable (§3: "executable bit, file mode 755 vs 644") from
// the working copy's checked-out permissions, since the ,v grammar
// itself carries no mode bit.
func IsExecutable(pathname string) bool {
	st, err := os.Stat(pathname)
	return err == nil && st.Mode()&0o111 != 0
}
