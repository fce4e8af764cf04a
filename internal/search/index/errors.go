package index

import "errors"

// ErrIndexCorrupt indicates the manifest and the items file disagree.
var ErrIndexCorrupt = errors.New("index corrupt")
