package page

// RevealThreshold is the share of the about region that must be in view
// before it is revealed.
const RevealThreshold = 0.3

// VisibilityTracker owns the one-way reveal flag of a region.
type VisibilityTracker struct {
	visible   bool
	threshold float64
	observer  IntersectionObserver
}

// NewVisibilityTracker returns a hidden tracker with the given threshold.
func NewVisibilityTracker(threshold float64) *VisibilityTracker {
	return &VisibilityTracker{threshold: threshold}
}

// Start observes target through factory. Without a factory the flag can only
// change through Reveal.
func (t *VisibilityTracker) Start(factory IntersectionObserverFactory, target string) {
	if factory == nil || t.visible || t.observer != nil {
		return
	}
	obs := factory.Observe(target, t.threshold, t.handle)
	if obs == nil {
		return
	}
	// the factory may deliver an entry before Observe returns
	if t.visible {
		obs.Disconnect()
		return
	}
	t.observer = obs
}

func (t *VisibilityTracker) handle(e IntersectionEntry) {
	if t.visible || e.Ratio < t.threshold {
		return
	}
	t.Reveal()
}

// Reveal sets the flag. The observer is released since the flag cannot
// change again.
func (t *VisibilityTracker) Reveal() {
	t.visible = true
	t.Stop()
}

// Visible reports the flag.
func (t *VisibilityTracker) Visible() bool { return t.visible }

// Stop releases the observer if one is registered. Safe to call repeatedly.
func (t *VisibilityTracker) Stop() {
	if t.observer == nil {
		return
	}
	obs := t.observer
	t.observer = nil
	obs.Disconnect()
}
