package table

import "errors"

var ErrTableNotFound = errors.New("table not found")
