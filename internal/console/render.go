package console

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"golang.org/x/text/message"

	"github.com/odyssey-erp/backoffice/internal/listview"
)

func render[T, D any](w io.Writer, p *message.Printer, layout Layout[T, D], v listview.View[T, D]) {
	fmt.Fprintf(w, "== %s ==\n", layout.Title)
	if v.Search != "" {
		fmt.Fprintln(w, p.Sprintf("Search: %s", v.Search))
	}

	switch {
	case !v.Loaded:
		fmt.Fprintln(w, p.Sprintf("Loading..."))
	case len(v.Items) == 0:
		fmt.Fprintln(w, p.Sprintf("No records."))
	default:
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, strings.Join(layout.Columns, "\t"))
		for _, item := range v.Items {
			fmt.Fprintln(tw, strings.Join(layout.Row(item), "\t"))
		}
		_ = tw.Flush()
	}

	pg := v.Pagination
	fmt.Fprintln(w, pageLine(p, pg))

	if v.EditOpen {
		title := p.Sprintf("New")
		if v.Editing {
			title = p.Sprintf("Edit")
		}
		fmt.Fprintf(w, "-- %s --\n", title)
		writeFields(w, layout.Form(v.Draft), v.Errors)
	}
	if v.DetailOpen && layout.Detail != nil {
		fmt.Fprintf(w, "-- %s --\n", p.Sprintf("Details"))
		writeFields(w, layout.Detail(v.Detail), nil)
		if layout.Extra != nil {
			layout.Extra(w, v.Detail)
		}
	}
}

func pageLine(p *message.Printer, pg listview.Pagination) string {
	line := p.Sprintf("Page %d of %d", pg.Page, pg.TotalPages)
	var nav []string
	if pg.HasPrev() {
		nav = append(nav, "<")
	}
	if pg.HasNext() {
		nav = append(nav, ">")
	}
	if len(nav) > 0 {
		line += " " + strings.Join(nav, " ")
	}
	return line
}

func writeFields(w io.Writer, fields []Field, errs listview.FieldErrors) {
	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)
	for _, f := range fields {
		fmt.Fprintf(tw, "%s (%s):\t%s\n", f.Label, f.Key, f.Value)
		if msg, ok := errs[f.Key]; ok {
			fmt.Fprintf(tw, "\t! %s\n", msg)
		}
	}
	_ = tw.Flush()
	// errors on fields the form does not list, e.g. an empty line-item list
	shown := make(map[string]bool, len(fields))
	for _, f := range fields {
		shown[f.Key] = true
	}
	for _, key := range errs.Fields() {
		if !shown[key] {
			fmt.Fprintf(w, "! %s: %s\n", key, errs[key])
		}
	}
}
