package ports

import "errors"

var ErrNoSave = errors.New("no save")
