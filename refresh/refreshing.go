package refresh

// IsRefreshing reports whether the indicator is showing refresh progress.
func (c *Controller) IsRefreshing() bool { return c.refreshing }

// SetRefreshing notifies the controller that refresh state changed. Do not
// call this when the refresh was triggered by a swipe: setting true here
// jumps the indicator to its refreshing position and scales it in without
// calling the refresh callback; setting false scales it out.
func (c *Controller) SetRefreshing(refreshing bool) {
	if refreshing && !c.refreshing {
		c.refreshing = true
		c.moveIndicator(c.triggeredOffset() - c.offsets.current)
		c.notify = false
		c.startScaleUp(CompleteRefresh)
		return
	}
	c.setRefreshing(refreshing, false)
}

func (c *Controller) setRefreshing(refreshing, notify bool) {
	if c.refreshing == refreshing {
		return
	}
	c.notify = notify
	c.ensureTarget()
	c.refreshing = refreshing
	if refreshing {
		c.animateOffsetToCorrectPosition(c.offsets.current, CompleteRefresh)
	} else {
		c.startScaleDown(CompleteRefresh)
	}
}

// finishRefreshTransition runs when a CompleteRefresh animation ends.
func (c *Controller) finishRefreshTransition() {
	if c.refreshing {
		c.indicator.SetAlpha(c.cfg.MaxAlpha)
		c.indicator.Start()
		if c.notify {
			c.notify = false
			c.logger.Debug("refresh triggered", "direction", c.direction.String())
			if c.onRefresh != nil {
				c.onRefresh(c.direction)
			}
		}
	} else {
		c.indicator.Stop()
		c.indicator.SetVisible(false)
		if c.cfg.ScaleMode {
			c.indicator.SetScale(0)
		} else {
			c.moveIndicator(c.offsets.original - c.offsets.current)
		}
	}
	c.offsets.current = c.indicator.Position()
}
