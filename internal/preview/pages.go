package preview

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/calyx-ui/calyx/i18n"
	"github.com/calyx-ui/calyx/icon"
	"github.com/calyx-ui/calyx/ui"
)

// commandRuntime interprets the JSON command lists carried by data-action
// attributes. It is the only client script the preview ships.
const commandRuntime = `
document.addEventListener("click", function (event) {
  var trigger = event.target.closest("[data-action]");
  if (!trigger) return;
  var ops;
  try { ops = JSON.parse(trigger.getAttribute("data-action")); } catch (e) { return; }
  ops.forEach(function (pair) {
    var name = pair[0], args = pair[1] || {};
    var targets = args.to ? document.querySelectorAll(args.to) : [trigger];
    targets.forEach(function (el) {
      switch (name) {
        case "show":
          el.classList.remove("hidden");
          if (args.display) el.style.display = args.display;
          transition(el, args);
          break;
        case "hide":
          transition(el, args, function () {
            el.classList.add("hidden");
            el.style.display = "";
          });
          break;
        case "add_class":
          el.classList.add.apply(el.classList, args.names.split(" "));
          break;
        case "remove_class":
          el.classList.remove.apply(el.classList, args.names.split(" "));
          break;
        case "focus":
          el.focus();
          break;
        case "focus_first":
          var focusable = el.querySelector("a, button, input, select, textarea, [tabindex]");
          if (focusable) focusable.focus();
          break;
        case "pop_focus":
          if (document.activeElement) document.activeElement.blur();
          break;
        case "dispatch":
          el.dispatchEvent(new CustomEvent(args.event, { bubbles: true, detail: args.detail }));
          break;
        case "set_attribute":
          el.setAttribute(args.attr[0], args.attr[1]);
          break;
        case "remove_attribute":
          el.removeAttribute(args.attr);
          break;
      }
    });
  });

  function transition(el, args, done) {
    if (!args.transition) { if (done) done(); return; }
    var base = args.transition[0].split(" ").filter(Boolean);
    var from = args.transition[1].split(" ").filter(Boolean);
    var to = args.transition[2].split(" ").filter(Boolean);
    el.classList.add.apply(el.classList, base.concat(from));
    requestAnimationFrame(function () {
      el.classList.remove.apply(el.classList, from);
      el.classList.add.apply(el.classList, to);
      setTimeout(function () {
        el.classList.remove.apply(el.classList, base.concat(to));
        if (done) done();
      }, args.time || 0);
    });
  }
});
`

// el renders a single element with a class attribute and child components.
func el(tag, class string, children ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, "<"+tag); err != nil {
			return err
		}
		if class != "" {
			if _, err := io.WriteString(w, ` class="`+templ.EscapeString(class)+`"`); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, ">"); err != nil {
			return err
		}
		for _, child := range children {
			if child == nil {
				continue
			}
			if err := child.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</"+tag+">")
		return err
	})
}

// text renders escaped text content.
func text(s string) templ.Component {
	return templ.Raw(templ.EscapeString(s))
}

// anchor renders a plain link.
func anchor(href, class string, children ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		open := `<a href="` + templ.EscapeString(href) + `"`
		if class != "" {
			open += ` class="` + templ.EscapeString(class) + `"`
		}
		if _, err := io.WriteString(w, open+">"); err != nil {
			return err
		}
		for _, child := range children {
			if err := child.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</a>")
		return err
	})
}

// trigger renders a button carrying a command in its data-action attribute.
func trigger(label, command string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		open := `<button type="button" class="rounded bg-[#4363EC] px-3 py-1.5 text-sm text-white"`
		if command != "" {
			open += ` data-action="` + templ.EscapeString(command) + `"`
		}
		_, err := io.WriteString(w, open+">"+templ.EscapeString(label)+"</button>")
		return err
	})
}

// layout wraps page content in the full preview document. lang is the
// resolved request language for the html element.
func layout(loc i18n.Localizer, lang, title string, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		head := `<!DOCTYPE html><html lang="` + templ.EscapeString(lang) + `"><head><meta charset="utf-8">` +
			`<meta name="viewport" content="width=device-width, initial-scale=1">` +
			`<title>` + templ.EscapeString(title) + `</title>` +
			`<script src="https://cdn.tailwindcss.com"></script>` +
			`<script src="https://unpkg.com/htmx.org@1.9.12"></script>` +
			`</head><body class="min-h-screen bg-gray-50 text-gray-900">`
		if _, err := io.WriteString(w, head); err != nil {
			return err
		}
		if err := icon.Sprite().Render(ctx, w); err != nil {
			return err
		}
		header := el("header", "mx-auto max-w-5xl px-6 pt-10 space-y-2",
			el("h1", "text-2xl font-semibold",
				anchor("/", "", text(i18n.T(loc, "preview.heading")))),
			el("p", "text-sm text-gray-600", text(i18n.T(loc, "preview.intro"))),
		)
		if err := header.Render(ctx, w); err != nil {
			return err
		}
		main := el("main", "mx-auto max-w-5xl px-6 py-10 space-y-10", content)
		if err := main.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "<script>"+commandRuntime+"</script></body></html>")
		return err
	})
}

// indexContent lists every showcased component.
func indexContent(loc i18n.Localizer) templ.Component {
	items := make([]templ.Component, 0, len(showcaseOrder))
	for _, name := range showcaseOrder {
		label := i18n.T(loc, "preview.component."+name)
		items = append(items, ui.Card(ui.CardProps{
			Variant: "outline",
			Padding: "medium",
			Content: anchor("/components/"+name, "block font-medium hover:underline", text(label)),
		}))
	}
	return el("div", "grid grid-cols-2 gap-4 md:grid-cols-3", items...)
}

// componentContent renders a component showcase with a breadcrumb back home.
func componentContent(loc i18n.Localizer, name string, body templ.Component) templ.Component {
	crumbs := ui.Breadcrumb(ui.BreadcrumbProps{
		Loc: loc,
		Items: []ui.BreadcrumbItem{
			{Label: i18n.T(loc, "preview.heading"), Link: "/"},
			{Label: i18n.T(loc, "preview.component."+name)},
		},
	})
	return el("div", "space-y-8", crumbs, body)
}

// notFoundContent renders the unknown component page.
func notFoundContent(loc i18n.Localizer) templ.Component {
	return el("div", "space-y-4",
		el("p", "text-lg", text(i18n.T(loc, "preview.not_found"))),
		anchor("/", "text-[#4363EC] hover:underline", text(i18n.T(loc, "preview.heading"))),
	)
}
