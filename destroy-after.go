package pulse

// DestroyAfter destroys the entity once the given number of target frame
// intervals has passed. Returns the id of the timer, which can be used to cancel it.
func DestroyAfter(app *App, id EntityId, units float64) TimerId {
	return app.Timers.Add(TimerConfig{
		Units: units,
		Unit:  TimerUnitNormalized,
		Callback: func(remaining float64) {
			if remaining <= 0 {
				app.Destroy(id)
			}
		},
	})
}
