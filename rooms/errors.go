package rooms

import "errors"

var ErrInvalidSlugFormat = errors.New("invalid-slug-format")
