package gate

// #region classify
// Classify maps a canonical depth scalar into a discrete safety level.
// Pure and total: no hidden state, identical inputs yield identical results.
// Both band floors compare with <=, so ties resolve to the more severe band.
func Classify(u float64, cfg Config) Result {
	if u <= cfg.Threshold {
		return Result{
			Level:     LevelBlocked,
			Reason:    ReasonBlocked,
			UValue:    u,
			Threshold: cfg.Threshold,
		}
	}

	if u <= cfg.Threshold+cfg.Margin {
		return Result{
			Level:     LevelWarning,
			Reason:    ReasonWarning,
			UValue:    u,
			Threshold: cfg.Threshold,
		}
	}

	return Result{
		Level:     LevelOK,
		Reason:    ReasonOK,
		UValue:    u,
		Threshold: cfg.Threshold,
	}
}

// #endregion classify
