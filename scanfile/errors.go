package scanfile

import "errors"

// ErrDecode indicates a scan file that cannot be parsed or decoded.
var ErrDecode = errors.New("scanfile: cannot decode scan file")
