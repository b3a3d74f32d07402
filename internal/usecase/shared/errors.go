package shared

import (
	"sarmiento-f5/internal/infra"
	"sarmiento-f5/internal/pkg/errs"
)

// ErrStoreUnavailable marks failures of the backing store. Handlers answer
// them with 500.
var ErrStoreUnavailable = errs.New("store unavailable")

// StoreErr marks repository failures; other errors pass through untouched.
func StoreErr(err error) error {
	if err == nil {
		return nil
	}
	if infra.IsKind(err, infra.KindStoreFailure) || infra.IsKind(err, infra.KindEncode) {
		return errs.Mark(err, ErrStoreUnavailable)
	}
	return err
}
