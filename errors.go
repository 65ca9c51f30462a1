package booktag

import (
	"github.com/simonhull/booktag/internal/types"
)

// UnsupportedFormatError is an alias to types.UnsupportedFormatError,
// re-exported from internal/types so the public API and the translation
// engine share one definition.
type UnsupportedFormatError = types.UnsupportedFormatError

// TagValueError is an alias to types.TagValueError, re-exported from
// internal/types so the public API and the translation engine share one
// definition.
type TagValueError = types.TagValueError

// NotAnImageError is an alias to types.NotAnImageError, re-exported
// from internal/types so the public API and the translation engine
// share one definition.
type NotAnImageError = types.NotAnImageError

// Warning is an alias to types.Warning, re-exported from internal/types
// so the public API and the translation engine share one definition.
type Warning = types.Warning
