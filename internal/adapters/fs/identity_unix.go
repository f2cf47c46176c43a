//go:build unix

package fs

import (
	"os"
	"syscall"

	"go.trai.ch/keydiff/internal/core/domain"
)

func inodeIdentity(info os.FileInfo) (domain.FileIdentity, bool) {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok || st == nil {
		return domain.FileIdentity{}, false
	}
	//nolint:unconvert // Field widths differ between platforms.
	return domain.NewInodeIdentity(uint64(st.Dev), uint64(st.Ino)), true
}
