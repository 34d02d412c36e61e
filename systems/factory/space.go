package factory

import (
	"github.com/automoto/gladiator/components"
	cfg "github.com/automoto/gladiator/config"
	"github.com/automoto/gladiator/sim"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// attachObject creates the collision object for e, links it both ways and
// adds it to the context's space.
func attachObject(ctx *sim.Context, e *donburi.Entry, x, y, w, h float64, tags ...string) *resolv.Object {
	obj := resolv.NewObject(x, y, w, h, tags...)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = e // Link for O(1) lookup
	components.Object.SetValue(e, components.ObjectData{Object: obj})
	ctx.Space.Add(obj)
	return obj
}

// sizeOf returns the override size when set, the kind's configured size otherwise.
func sizeOf(kind cfg.Kind, opts Options) (float64, float64) {
	w, h := opts.W, opts.H
	kc := cfg.KindOf(kind)
	if w <= 0 {
		w = kc.Width
	}
	if h <= 0 {
		h = kc.Height
	}
	return w, h
}

func setActor(e *donburi.Entry, kind cfg.Kind) {
	components.Actor.SetValue(e, components.ActorData{
		Kind:    kind,
		Alive:   true,
		Visible: true,
	})
}
