package systems

import (
	cfg "github.com/automoto/gladiator/config"
	"github.com/automoto/gladiator/sim"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// UpdateLight eases the displayed light scale toward the authoritative one.
// A change of Scale mid-ease restarts the tween from the current display.
func UpdateLight(ctx *sim.Context) {
	light := ctx.Light
	if light == nil {
		return
	}
	if light.Display == light.Scale {
		light.SetTween(nil, 0)
		return
	}

	duration := cfg.Light.EaseDuration.Seconds()
	if duration <= 0 {
		light.Display = light.Scale
		light.SetTween(nil, 0)
		return
	}

	if light.Tween == nil || light.TweenTarget() != light.Scale {
		tw := gween.New(float32(light.Display), float32(light.Scale), float32(duration), ease.Linear)
		light.SetTween(tw, light.Scale)
	}

	v, finished := light.Tween.Update(float32(ctx.Seconds()))
	light.Display = float64(v)
	if finished {
		light.Display = light.Scale
		light.SetTween(nil, 0)
	}
}
