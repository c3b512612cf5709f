// Package pulse is a small frame loop engine for 2D games.
//
// An App owns a Clock, an InputTracker, a TimerPool, a Sequencer and a Registry
// of entities and advances them once per Frame in a fixed order of phases.
// Time is measured in target frame intervals: at the target frame rate,
// the delta of a frame is 1.
//
// The engine does not know how anything is drawn. Hosts like pulsebiten feed input
// through a Device and attach a Presentation to entities.
package pulse
