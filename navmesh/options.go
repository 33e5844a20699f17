package navmesh

// Option configures a FindPath call.
type Option func(*options)

type options struct {
	smoothing bool
}

func defaultOptions() options {
	return options{smoothing: true}
}

// WithSmoothing enables or disables the smoothing pass (enabled by default).
// Disabled, portal waypoints stay at the portal midpoints.
func WithSmoothing(on bool) Option {
	return func(o *options) { o.smoothing = on }
}
