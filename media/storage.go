// SPDX-License-Identifier: EPL-2.0

package media

// FolderInfo describes one folder on the media.
type FolderInfo struct {
	Name     string
	NumFiles int
}

// FileInfo describes one file inside a folder.
type FileInfo struct {
	Name       string
	Channels   int
	BitDepth   int
	Frames     int
	SampleRate int
}

// ReadCallback reports the outcome of an accepted read. data and tag are
// echoed from the request.
type ReadCallback func(data any, tag uint64, ok bool)

// ReadRequest asks for NumFrames frames starting at StartFrame of one
// file, converted to Channels and BitDepth, written to Dst.
type ReadRequest struct {
	Folder int
	File   int
	// Dst must hold at least NumFrames*Channels samples. It is written
	// only between acceptance and the callback.
	Dst        []int16
	NumFrames  int
	StartFrame int
	Channels   int
	BitDepth   int

	Callback     ReadCallback
	CallbackData any
	Tag          uint64

	// Guard, when set, is armed with Tag by the issuer. The storage
	// writes Dst only while it holds a claim on it, and fails the read
	// when the claim is refused.
	Guard *WriteGuard
}

// Storage is removable media holding sample folders.
//
// ReadFrames never blocks. It returns false if the request was rejected,
// in which case the callback is never invoked. Otherwise the callback is
// invoked exactly once, possibly on another goroutine, possibly before
// ReadFrames returns. Implementations copy what they need from req
// before returning; the caller may reuse it afterwards.
type Storage interface {
	IsMounted() bool
	NumFolders() int
	FolderInfo(folder int) (FolderInfo, error)
	FileInfo(folder, file int) (FileInfo, error)
	ReadFrames(req *ReadRequest) bool
}
