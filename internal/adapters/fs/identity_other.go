//go:build !unix

package fs

import (
	"os"

	"go.trai.ch/keydiff/internal/core/domain"
)

func inodeIdentity(_ os.FileInfo) (domain.FileIdentity, bool) {
	return domain.FileIdentity{}, false
}
