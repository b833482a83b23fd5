//go:build !unix

package executor

import "io/fs"

// writable falls back to the owner write bit.
func writable(_ string, info fs.FileInfo) bool {
	return info.Mode().Perm()&0o200 != 0
}
