package format

import "errors"

// ErrNameCountMismatch indicates the caller supplied a different number of
// instruction names than instructions; both emitters need one name per
// instruction for customTypes/section labeling.
var ErrNameCountMismatch = errors.New("format: instruction name count does not match instruction count")
