// SPDX-License-Identifier: EPL-2.0

package loader

import "github.com/ik5/samplebank/media"

// FindFolder returns the index of the folder called name.
func FindFolder(s media.Storage, name string) (int, error) {
	if !s.IsMounted() {
		return -1, ErrMediaUnavailable
	}

	n := s.NumFolders()
	for i := range n {
		info, err := s.FolderInfo(i)
		if err != nil {
			continue
		}
		if info.Name == name {
			return i, nil
		}
	}
	return -1, ErrFolderNotFound
}
