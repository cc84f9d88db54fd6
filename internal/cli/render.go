package cli

import (
	"fmt"
	"io"

	"fridge-inventory/internal/voice"
)

func renderCommandOutput(w io.Writer, out voice.CommandOutput) {
	if out.NeedsClarification {
		fmt.Fprintf(w, "%s %s\n", warning.Render("?"), out.ClarificationQuestion)
		return
	}

	for _, a := range out.Actions {
		mark := success.Render("✓")
		if !a.Succeeded() {
			mark = failure.Render("✗")
		}

		line := fmt.Sprintf("%s %-15s %s", mark, a.Type, accent.Render(a.ItemName))
		if a.Type.IsMutation() {
			line += fmt.Sprintf(" x%d", a.Quantity)
			if a.ShelfName != "" {
				line += muted.Render(fmt.Sprintf(" (%s / %s)", a.ContainerName, a.ShelfName))
			}
		}
		if a.Reason != "" {
			line += " " + muted.Render(string(a.Reason))
		}
		fmt.Fprintln(w, line)
	}

	style := success
	if !out.Success {
		style = failure
	}
	fmt.Fprintln(w, style.Render(out.Message))
}

func renderQueryOutput(w io.Writer, out voice.QueryOutput) {
	fmt.Fprintln(w, bold.Render(out.Message))
	for _, item := range out.Items {
		fmt.Fprintf(w, "%s %d\n", accent.Render(item.Name), item.TotalQuantity)
		for _, loc := range item.Locations {
			fmt.Fprintln(w, muted.Render(fmt.Sprintf("  %s / %s (#%d)", loc.ContainerName, loc.ShelfName, loc.ShelfPosition)))
		}
	}
}
