package paginate

import "errors"

var ErrInvalidPage = errors.New("invalid page number")
