package octree

import (
	"go.uber.org/zap"

	"github.com/aglyzov/go-octree/internal/options"
)

type config struct {
	logger      *zap.Logger
	boundsCheck bool
}

// Option configures a Tree on construction.
type Option = options.Option[*config]

// WithLogger sets the logger used to report failed insertions and
// inconsistencies. A nil logger disables logging.
func WithLogger(logger *zap.Logger) Option {
	return options.NoError(func(c *config) {
		if logger == nil {
			logger = zap.NewNop()
		}
		c.logger = logger
	})
}

// WithBoundsCheck makes Set reject and Get ignore coordinates outside the
// range representable at the tree's depth instead of aliasing them.
func WithBoundsCheck() Option {
	return options.NoError(func(c *config) {
		c.boundsCheck = true
	})
}
