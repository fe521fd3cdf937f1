package cli

import "runtime"

// Binary is the logical name of one mkvtoolnix executable.
type Binary string

const (
	Merge    Binary = "mkvmerge"
	PropEdit Binary = "mkvpropedit"
	Extract  Binary = "mkvextract"
)

// Binaries returns every supported binary.
func Binaries() []Binary {
	return []Binary{Merge, PropEdit, Extract}
}

func (b Binary) String() string { return string(b) }

// executable returns the file name of b on the current platform.
func (b Binary) executable() string {
	if runtime.GOOS == "windows" {
		return string(b) + ".exe"
	}

	return string(b)
}
