package bindings

import (
	"fmt"
	"sort"
	"strings"

	"github.com/1broseidon/altdrag/internal/platform"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/keybind"
	"github.com/BurntSushi/xgbutil/mousebind"
)

var (
	parseStringFn      = mousebind.ParseString
	modMaskForKeysymFn = modMaskForKeysym
)

// Binding is a modifier+button combination that starts a drag.
type Binding struct {
	// Name identifies the binding in logs ("move", "resize").
	Name string
	// Spec is the mousebind string it was parsed from, e.g. "Mod1-1".
	Spec   string
	Mods   uint16
	Button xproto.Button
}

// StateMask returns the button-state bit reported in motion events while
// the binding's button is held.
func (b Binding) StateMask() uint16 {
	return platform.ButtonMask(uint8(b.Button))
}

func (b Binding) String() string {
	return fmt.Sprintf("%s(%s)", b.Name, b.Spec)
}

// Grabber registers passive button grabs on the root window.
type Grabber interface {
	GrabButton(button xproto.Button, mods uint16) error
	UngrabButton(button xproto.Button, mods uint16) error
	Flush()
}

// Registrar parses bindings and turns them into passive grabs.
type Registrar struct {
	xu          *xgbutil.XUtil
	grabber     Grabber
	ignoreLocks bool
}

// NewRegistrar creates a registrar. With ignoreLocks set every binding is
// also grabbed with each combination of CapsLock, NumLock and ScrollLock.
func NewRegistrar(xu *xgbutil.XUtil, grabber Grabber, ignoreLocks bool) *Registrar {
	return &Registrar{
		xu:          xu,
		grabber:     grabber,
		ignoreLocks: ignoreLocks,
	}
}

// Parse turns a mousebind string such as "Mod1-3" into a Binding.
func (r *Registrar) Parse(name, spec string) (Binding, error) {
	spec = strings.TrimSpace(spec)
	mods, button, err := parseStringFn(r.xu, spec)
	if err != nil {
		return Binding{}, fmt.Errorf("invalid %s binding %q: %w", name, spec, err)
	}
	if platform.ButtonMask(uint8(button)) == 0 {
		return Binding{}, fmt.Errorf("invalid %s binding %q: button %d cannot be dragged", name, spec, button)
	}
	return Binding{Name: name, Spec: spec, Mods: mods, Button: button}, nil
}

// Register grabs every binding and flushes the connection. It is all or
// nothing: if any grab fails the ones already made are released and the
// error is returned.
func (r *Registrar) Register(bindings ...Binding) error {
	variants := []uint16{0}
	if r.ignoreLocks {
		variants = r.lockVariants()
	}

	type grab struct {
		button xproto.Button
		mods   uint16
	}
	var done []grab

	for _, b := range bindings {
		for _, extra := range variants {
			mods := b.Mods | extra
			if err := r.grabber.GrabButton(b.Button, mods); err != nil {
				for _, g := range done {
					_ = r.grabber.UngrabButton(g.button, g.mods)
				}
				r.grabber.Flush()
				return fmt.Errorf("failed to register %s binding: %w", b, err)
			}
			done = append(done, grab{button: b.Button, mods: mods})
		}
	}

	r.grabber.Flush()
	return nil
}

// lockVariants returns every combination of the lock modifiers present on
// this keyboard, including the empty one.
func (r *Registrar) lockVariants() []uint16 {
	// Always ignore CapsLock.
	caps := uint16(xproto.ModMaskLock)

	numLock := modMaskForKeysymFn(r.xu, "Num_Lock")
	scrollLock := modMaskForKeysymFn(r.xu, "Scroll_Lock")

	base := []uint16{caps}
	if numLock != 0 && numLock != caps {
		base = append(base, numLock)
	}
	if scrollLock != 0 && scrollLock != caps && scrollLock != numLock {
		base = append(base, scrollLock)
	}
	return lockCombinations(base)
}

func lockCombinations(base []uint16) []uint16 {
	unique := map[uint16]struct{}{0: {}}
	for subset := 1; subset < (1 << len(base)); subset++ {
		var mask uint16
		for bit := range base {
			if subset&(1<<bit) != 0 {
				mask |= base[bit]
			}
		}
		unique[mask] = struct{}{}
	}

	out := make([]uint16, 0, len(unique))
	for mask := range unique {
		out = append(out, mask)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func modMaskForKeysym(xu *xgbutil.XUtil, keysym string) uint16 {
	for _, keycode := range keybind.StrToKeycodes(xu, keysym) {
		if mask := keybind.ModGet(xu, keycode); mask != 0 {
			return mask
		}
	}
	return 0
}
