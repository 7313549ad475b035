package core

import "errors"

var ErrFieldMissing = errors.New("parrot: missing form field")

func IsFieldMissingError(err error) bool {
	return err != nil && err.Error() == ErrFieldMissing.Error()
}
