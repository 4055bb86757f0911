// Package js builds declarative client command descriptions.
//
// A Command is an ordered list of operations encoded as a JSON array of
// [name, args] pairs. Components embed the encoding in data attributes and
// the host page's interaction runtime executes it when the carrying
// element's event fires. Commands are immutable values: every method returns
// a new Command, so partial command chains can be shared and extended freely.
package js

import (
	"encoding/json"
	"time"
)

// Command is an immutable sequence of client operations.
type Command struct {
	ops []operation
}

type operation struct {
	name string
	args map[string]any
}

// Transition names the class sets applied across a timed transition: Base is
// present for the whole transition, From is the starting frame and To the
// final frame. The runtime removes Base and From once To has settled.
type Transition struct {
	Base string
	From string
	To   string
}

type config struct {
	target     string
	duration   time.Duration
	transition Transition
	display    string
}

// Option adjusts a single command operation.
type Option func(*config)

// To targets the operation at a CSS selector instead of the event source.
func To(selector string) Option {
	return func(c *config) { c.target = selector }
}

// Duration overrides the operation's transition time.
func Duration(d time.Duration) Option {
	return func(c *config) { c.duration = d }
}

// WithTransition attaches transition class sets to the operation.
func WithTransition(t Transition) Option {
	return func(c *config) { c.transition = t }
}

// Display sets the CSS display used when revealing an element. The runtime
// defaults to "block" when unset.
func Display(display string) Option {
	return func(c *config) { c.display = display }
}

// Show reveals the element matching target.
func Show(target string, opts ...Option) Command {
	return Command{}.Show(target, opts...)
}

// Hide conceals the element matching target.
func Hide(target string, opts ...Option) Command {
	return Command{}.Hide(target, opts...)
}

// AddClass adds the space-separated class names to the targeted element.
func AddClass(names string, opts ...Option) Command {
	return Command{}.AddClass(names, opts...)
}

// RemoveClass removes the space-separated class names from the targeted element.
func RemoveClass(names string, opts ...Option) Command {
	return Command{}.RemoveClass(names, opts...)
}

// Focus moves input focus to the element matching target.
func Focus(target string) Command {
	return Command{}.Focus(target)
}

// FocusFirst moves input focus to the first focusable descendant of target.
func FocusFirst(target string) Command {
	return Command{}.FocusFirst(target)
}

// PopFocus restores focus to the element focused before the last focus move.
func PopFocus() Command {
	return Command{}.PopFocus()
}

// Dispatch emits a DOM custom event on the targeted element.
func Dispatch(event string, opts ...Option) Command {
	return Command{}.Dispatch(event, opts...)
}

// SetAttribute sets an attribute on the targeted element.
func SetAttribute(name, value string, opts ...Option) Command {
	return Command{}.SetAttribute(name, value, opts...)
}

// RemoveAttribute removes an attribute from the targeted element.
func RemoveAttribute(name string, opts ...Option) Command {
	return Command{}.RemoveAttribute(name, opts...)
}

// Show appends a reveal operation for target.
func (c Command) Show(target string, opts ...Option) Command {
	cfg := applyOptions(opts)
	args := map[string]any{"to": target}
	if cfg.display != "" {
		args["display"] = cfg.display
	}
	putTiming(args, cfg)
	return c.push("show", args)
}

// Hide appends a conceal operation for target.
func (c Command) Hide(target string, opts ...Option) Command {
	cfg := applyOptions(opts)
	args := map[string]any{"to": target}
	putTiming(args, cfg)
	return c.push("hide", args)
}

// AddClass appends a class addition operation.
func (c Command) AddClass(names string, opts ...Option) Command {
	cfg := applyOptions(opts)
	args := map[string]any{"names": names}
	putTarget(args, cfg)
	putTiming(args, cfg)
	return c.push("add_class", args)
}

// RemoveClass appends a class removal operation.
func (c Command) RemoveClass(names string, opts ...Option) Command {
	cfg := applyOptions(opts)
	args := map[string]any{"names": names}
	putTarget(args, cfg)
	putTiming(args, cfg)
	return c.push("remove_class", args)
}

// Focus appends a focus move operation.
func (c Command) Focus(target string) Command {
	return c.push("focus", map[string]any{"to": target})
}

// FocusFirst appends a first-focusable focus move operation.
func (c Command) FocusFirst(target string) Command {
	return c.push("focus_first", map[string]any{"to": target})
}

// PopFocus appends a focus restore operation.
func (c Command) PopFocus() Command {
	return c.push("pop_focus", map[string]any{})
}

// Dispatch appends a custom event dispatch operation.
func (c Command) Dispatch(event string, opts ...Option) Command {
	cfg := applyOptions(opts)
	args := map[string]any{"event": event}
	putTarget(args, cfg)
	return c.push("dispatch", args)
}

// SetAttribute appends an attribute set operation.
func (c Command) SetAttribute(name, value string, opts ...Option) Command {
	cfg := applyOptions(opts)
	args := map[string]any{"attr": []string{name, value}}
	putTarget(args, cfg)
	return c.push("set_attribute", args)
}

// RemoveAttribute appends an attribute removal operation.
func (c Command) RemoveAttribute(name string, opts ...Option) Command {
	cfg := applyOptions(opts)
	args := map[string]any{"attr": name}
	putTarget(args, cfg)
	return c.push("remove_attribute", args)
}

// MarshalJSON encodes the command as an array of [name, args] pairs.
func (c Command) MarshalJSON() ([]byte, error) {
	encoded := make([][2]any, 0, len(c.ops))
	for _, op := range c.ops {
		encoded = append(encoded, [2]any{op.name, op.args})
	}
	return json.Marshal(encoded)
}

// String returns the attribute-ready JSON encoding of the command.
func (c Command) String() string {
	if len(c.ops) == 0 {
		return "[]"
	}
	encoded, err := json.Marshal(c)
	if err != nil {
		return "[]"
	}
	return string(encoded)
}

func (c Command) push(name string, args map[string]any) Command {
	ops := make([]operation, 0, len(c.ops)+1)
	ops = append(ops, c.ops...)
	ops = append(ops, operation{name: name, args: args})
	return Command{ops: ops}
}

func applyOptions(opts []Option) config {
	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

func putTarget(args map[string]any, cfg config) {
	if cfg.target != "" {
		args["to"] = cfg.target
	}
}

func putTiming(args map[string]any, cfg config) {
	if cfg.duration > 0 {
		args["time"] = int(cfg.duration / time.Millisecond)
	}
	if cfg.transition != (Transition{}) {
		args["transition"] = []string{cfg.transition.Base, cfg.transition.From, cfg.transition.To}
	}
}
