package storage

import "errors"

var ErrNotFound = errors.New("resource not found")
var ErrTampered = errors.New("stored value failed authentication")
