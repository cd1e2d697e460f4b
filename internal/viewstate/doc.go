// Package viewstate holds the page's client-side view state: the dark/light
// theme preference, the scroll-derived progress/active-section state and the
// one-shot animated statistic counters.
//
// Everything here is independent of the browser. The host environment is
// reached through small collaborator interfaces (Store, SystemScheme,
// Document, ScrollSignal, Viewport, VisibilityObserver, Scheduler) which the
// js/wasm bridge in internal/browser implements against the DOM.
//
// The three subsystems share no state. Each callback entry point is expected
// to be invoked one at a time, as a browser event loop does.
package viewstate
