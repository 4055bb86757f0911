package ui

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/calyx-ui/calyx/js"
)

type decodedOp struct {
	name string
	args map[string]any
}

func decodeCommand(t *testing.T, command js.Command) []decodedOp {
	t.Helper()
	var raw [][]json.RawMessage
	if err := json.Unmarshal([]byte(command.String()), &raw); err != nil {
		t.Fatalf("decode %q: %v", command.String(), err)
	}
	ops := make([]decodedOp, 0, len(raw))
	for _, pair := range raw {
		var op decodedOp
		if err := json.Unmarshal(pair[0], &op.name); err != nil {
			t.Fatalf("decode op name: %v", err)
		}
		if err := json.Unmarshal(pair[1], &op.args); err != nil {
			t.Fatalf("decode op args: %v", err)
		}
		ops = append(ops, op)
	}
	return ops
}

func transitionFrames(t *testing.T, op decodedOp) (from, to string) {
	t.Helper()
	frames, ok := op.args["transition"].([]any)
	if !ok || len(frames) != 3 {
		t.Fatalf("op %s missing transition frames: %v", op.name, op.args)
	}
	return frames[1].(string), frames[2].(string)
}

func TestBannerRevealConcealSymmetry(t *testing.T) {
	show := decodeCommand(t, ShowBanner("notices"))
	hide := decodeCommand(t, HideBanner("notices"))
	showFrom, showTo := transitionFrames(t, show[0])
	hideFrom, hideTo := transitionFrames(t, hide[0])
	if showFrom != hideTo || showTo != hideFrom {
		t.Fatalf("banner transitions are not mirrored: show %q->%q, hide %q->%q",
			showFrom, showTo, hideFrom, hideTo)
	}
}

func TestModalRevealConcealSymmetryAndSideEffects(t *testing.T) {
	show := decodeCommand(t, ShowModal("confirm"))
	hide := decodeCommand(t, HideModal("confirm"))

	showFrom, showTo := transitionFrames(t, show[0])
	hideFrom, hideTo := transitionFrames(t, hide[0])
	if showFrom != hideTo || showTo != hideFrom {
		t.Fatalf("modal transitions are not mirrored: show %q->%q, hide %q->%q",
			showFrom, showTo, hideFrom, hideTo)
	}

	if show[0].args["to"] != "#confirm" || hide[0].args["to"] != "#confirm" {
		t.Fatalf("modal commands should target #confirm: %v / %v", show[0].args, hide[0].args)
	}

	// Reveal locks body scroll and moves focus in; conceal reverses both.
	if show[1].name != "add_class" || show[1].args["names"] != "overflow-y-hidden" || show[1].args["to"] != "body" {
		t.Fatalf("modal reveal missing scroll lock: %v", show[1])
	}
	if show[2].name != "focus_first" || show[2].args["to"] != "#confirm-content" {
		t.Fatalf("modal reveal missing focus move: %v", show[2])
	}
	if hide[1].name != "remove_class" || hide[1].args["names"] != "overflow-y-hidden" {
		t.Fatalf("modal conceal missing scroll unlock: %v", hide[1])
	}
	if hide[2].name != "pop_focus" {
		t.Fatalf("modal conceal missing focus restore: %v", hide[2])
	}
}

func TestCommandDurationsAreCosmetic(t *testing.T) {
	for _, command := range []js.Command{
		ShowBanner("a"), HideBanner("a"), ShowModal("a"), HideModal("a"),
	} {
		ops := decodeCommand(t, command)
		ms := ops[0].args["time"].(float64)
		if ms < 200 || ms > 300 {
			t.Fatalf("transition duration %v outside 200-300ms", ms)
		}
	}
}

func TestSidebarRevealConcealSymmetry(t *testing.T) {
	for _, position := range []string{PositionLeft, PositionRight} {
		show := decodeCommand(t, ShowSidebar("nav"))
		hide := decodeCommand(t, HideSidebar("nav", position))

		added := show[1].args["names"].(string)
		removed := hide[0].args["names"].(string)
		if added != removed {
			t.Fatalf("sidebar conceal should remove what reveal added: %q vs %q", added, removed)
		}
		offCanvas := hide[1].args["names"].(string)
		if !strings.Contains(show[0].args["names"].(string), offCanvas) {
			t.Fatalf("sidebar reveal should clear the %s off-canvas class %q", position, offCanvas)
		}
	}
}

func TestShowModalUsesFlexDisplay(t *testing.T) {
	ops := decodeCommand(t, ShowModal("confirm"))
	if ops[0].args["display"] != "flex" {
		t.Fatalf("modal reveal display = %v, want flex", ops[0].args["display"])
	}
}
