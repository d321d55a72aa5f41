package refresh

import "time"

// ============================================================================
// Animation Sequencer
// ============================================================================

// Tick advances the indicator animations to now and runs the completions of
// those that finished. Returns true while animations remain, so the host
// knows whether to schedule another frame.
func (c *Controller) Tick(now time.Time) bool {
	for _, anim := range c.anims.Tick(now) {
		switch anim.Completion() {
		case CompleteRefresh:
			c.finishRefreshTransition()
		case CompleteScaleDown:
			c.startScaleDown(CompleteNone)
		}
	}
	return c.anims.HasActive()
}

// Animating reports whether any indicator animation is registered.
func (c *Controller) Animating() bool { return c.anims.HasActive() }

// OnAnimatingChange sets a callback fired when the controller goes from idle
// to animating and back. Hosts use it to start and stop their frame clock.
func (c *Controller) OnAnimatingChange(fn func(animating bool)) {
	c.anims.OnActiveChange(fn)
}

func (c *Controller) startScaleUp(completion Completion) {
	c.indicator.SetVisible(true)
	c.indicator.SetAlpha(c.cfg.MaxAlpha)
	c.anims.Start(NewAnimation(KindScaleUp, ms(c.cfg.MediumAnimationMs), c.cfg.scaleEasing(), completion,
		func(progress float64) {
			c.indicator.SetScale(progress)
		}))
}

func (c *Controller) startScaleDown(completion Completion) {
	c.anims.Start(NewAnimation(KindScaleDown, ms(c.cfg.ScaleDownMs), c.cfg.scaleEasing(), completion,
		func(progress float64) {
			c.indicator.SetScale(1 - progress)
		}))
}

func (c *Controller) startAlphaAnimation(kind AnimationKind, to int) {
	from := c.indicator.Alpha()
	c.anims.Start(NewAnimation(kind, ms(c.cfg.AlphaAnimationMs), EaseLinear, CompleteNone,
		func(progress float64) {
			c.indicator.SetAlpha(from + int(float64(to-from)*progress))
		}))
}

// animateOffsetToCorrectPosition slides the indicator to its refreshing
// position. The endpoint is recomputed every frame.
func (c *Controller) animateOffsetToCorrectPosition(from int, completion Completion) {
	c.from = from
	c.anims.Start(NewAnimation(KindOffsetToCorrectPosition, ms(c.cfg.AnimateToTriggerMs), EaseDecelerate(c.cfg.DecelerateFactor), completion,
		func(progress float64) {
			end := c.triggeredOffset()
			target := c.from + int(float64(end-c.from)*progress)
			c.moveIndicator(target - c.indicator.Position())
		}))
}

func (c *Controller) animateOffsetToStart(from int, completion Completion) {
	if c.cfg.ScaleMode {
		c.startScaleDownToStart(from, completion)
		return
	}
	c.from = from
	c.anims.Start(NewAnimation(KindOffsetToStart, ms(c.cfg.AnimateToStartMs), EaseDecelerate(c.cfg.DecelerateFactor), completion,
		c.moveToStart))
}

func (c *Controller) moveToStart(progress float64) {
	target := c.from + int(float64(c.offsets.original-c.from)*progress)
	c.moveIndicator(target - c.indicator.Position())
}

func (c *Controller) startScaleDownToStart(from int, completion Completion) {
	c.from = from
	c.startingScale = c.indicator.Scale()
	c.anims.Start(NewAnimation(KindScaleDownToStart, ms(c.cfg.ScaleDownMs), c.cfg.scaleEasing(), completion,
		func(progress float64) {
			c.indicator.SetScale(c.startingScale - c.startingScale*progress)
			c.moveToStart(progress)
		}))
}
