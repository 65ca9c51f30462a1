package booktag

import (
	"github.com/simonhull/booktag/internal/types"
)

// Properties is an alias to types.Properties, re-exported from
// internal/types so the public API and the codec backends share one
// definition.
type Properties = types.Properties
