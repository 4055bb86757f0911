package ui

import (
	"strings"
	"testing"

	"golang.org/x/net/html"
)

func TestModalHiddenByDefault(t *testing.T) {
	got := renderToString(t, Modal(ModalProps{
		ID:      "confirm",
		Title:   "Confirm delete",
		Content: textComponent("This cannot be undone."),
	}))
	for _, want := range []string{
		`id="confirm"`,
		`role="dialog"`,
		`aria-modal="true"`,
		`aria-labelledby="confirm-title"`,
		"hidden",
		"opacity-0 scale-95",
		`id="confirm-content"`,
		`id="confirm-title"`,
		"Confirm delete",
		"This cannot be undone.",
		"modal-overlay",
		"max-w-lg",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("modal missing %q in %q", want, got)
		}
	}
}

func TestModalShownAtRender(t *testing.T) {
	sets := classSets(t, renderToString(t, Modal(ModalProps{ID: "confirm", Show: true})))
	for _, cls := range []string{"hidden", "opacity-0", "scale-95"} {
		if sets["#confirm"][cls] {
			t.Fatalf("shown modal should not carry %q", cls)
		}
	}
}

// classSets indexes each element's class list by the selectors commands
// target: "#id" per identified element plus "body".
func classSets(t *testing.T, fragment string) map[string]map[string]bool {
	t.Helper()
	sets := map[string]map[string]bool{}
	walkNodes(parseFragment(t, fragment), func(n *html.Node) {
		if n.Type != html.ElementNode {
			return
		}
		classes := map[string]bool{}
		for _, cls := range strings.Fields(nodeClass(n)) {
			classes[cls] = true
		}
		if n.Data == "body" {
			sets["body"] = classes
		}
		for _, attr := range n.Attr {
			if attr.Key == "id" && attr.Val != "" {
				sets["#"+attr.Val] = classes
			}
		}
	})
	return sets
}

// applyOps replays a command's class effects on the indexed markup the way
// the interaction runtime settles them: show drops hidden, hide restores it,
// and no transition frame class survives once the transition ends.
func applyOps(t *testing.T, sets map[string]map[string]bool, ops []decodedOp) {
	t.Helper()
	for _, op := range ops {
		target, _ := op.args["to"].(string)
		classes, ok := sets[target]
		if !ok {
			continue
		}
		switch op.name {
		case "show":
			delete(classes, "hidden")
			settleTransition(classes, op.args)
		case "hide":
			settleTransition(classes, op.args)
			classes["hidden"] = true
		case "add_class":
			for _, cls := range strings.Fields(op.args["names"].(string)) {
				classes[cls] = true
			}
		case "remove_class":
			for _, cls := range strings.Fields(op.args["names"].(string)) {
				delete(classes, cls)
			}
		}
	}
}

func settleTransition(classes map[string]bool, args map[string]any) {
	frames, ok := args["transition"].([]any)
	if !ok {
		return
	}
	for _, frame := range frames {
		for _, cls := range strings.Fields(frame.(string)) {
			delete(classes, cls)
		}
	}
}

func TestModalRevealClearsHiddenState(t *testing.T) {
	sets := classSets(t, renderToString(t, Modal(ModalProps{ID: "m", Title: "Confirm"})))
	for _, cls := range []string{"hidden", "opacity-0", "scale-95"} {
		if !sets["#m"][cls] {
			t.Fatalf("hidden modal missing %q on the reveal target", cls)
		}
	}

	applyOps(t, sets, decodeCommand(t, ShowModal("m")))
	for _, selector := range []string{"#m", "#m-content"} {
		for _, cls := range []string{"hidden", "opacity-0", "scale-95"} {
			if sets[selector][cls] {
				t.Fatalf("revealed modal still carries %q on %s", cls, selector)
			}
		}
	}
	if !sets["body"]["overflow-y-hidden"] {
		t.Fatal("revealed modal should lock body scroll")
	}

	applyOps(t, sets, decodeCommand(t, HideModal("m")))
	if !sets["#m"]["hidden"] {
		t.Fatal("concealed modal should be hidden again")
	}
	for _, cls := range []string{"opacity-100", "scale-100"} {
		if sets["#m"][cls] {
			t.Fatalf("concealed modal left %q behind", cls)
		}
	}
	if sets["body"]["overflow-y-hidden"] {
		t.Fatal("concealed modal should unlock body scroll")
	}
}

func TestModalCloseControlCarriesConcealCommand(t *testing.T) {
	got := renderToString(t, Modal(ModalProps{ID: "confirm"}))
	if !strings.Contains(got, "data-action=") {
		t.Fatalf("modal missing close command: %q", got)
	}
	if !strings.Contains(got, "#confirm") {
		t.Fatalf("modal close command should target the modal id: %q", got)
	}
	if !strings.Contains(got, "pop_focus") {
		t.Fatalf("modal conceal should restore focus: %q", got)
	}
	if !strings.Contains(got, "overflow-y-hidden") {
		t.Fatalf("modal conceal should unlock body scroll: %q", got)
	}
}

func TestModalWidthAndTitleOmission(t *testing.T) {
	got := renderToString(t, Modal(ModalProps{ID: "wide", Size: "extra_large"}))
	if !strings.Contains(got, "max-w-2xl") {
		t.Fatalf("modal missing extra_large width: %q", got)
	}
	if strings.Contains(got, "aria-labelledby") {
		t.Fatalf("untitled modal should not claim a label: %q", got)
	}
	if strings.Contains(got, "<h2") {
		t.Fatalf("untitled modal should not render a heading: %q", got)
	}
}
