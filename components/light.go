package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// LightData is the player's vision radius. Scale is authoritative and only
// written by collision response; Display eases toward it for presentation.
type LightData struct {
	Scale   float64
	Display float64
	Min     float64
	Tween   *gween.Tween // nil when Display has caught up
	tweenTo float64
}

// TweenTarget reports the scale the running tween is heading to.
func (l *LightData) TweenTarget() float64 {
	return l.tweenTo
}

// SetTween replaces the running tween.
func (l *LightData) SetTween(tw *gween.Tween, to float64) {
	l.Tween = tw
	l.tweenTo = to
}

var Light = donburi.NewComponentType[LightData]()
