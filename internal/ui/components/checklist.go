package components

import (
	"strings"

	"github.com/abhisek/symptomcheck/internal/ui/theme"
)

// CheckItem is one toggleable row.
type CheckItem struct {
	ID      string
	Label   string
	Checked bool
}

// CheckList is a vertical list of checkboxes. Cursor is -1 when focus is
// elsewhere on the screen.
type CheckList struct {
	Items  []CheckItem
	Cursor int
}

// NewCheckList creates an unchecked list with the cursor on the first item.
func NewCheckList(items []CheckItem) CheckList {
	return CheckList{Items: items}
}

// Toggle flips the item at i. Out-of-range indices are ignored.
func (c *CheckList) Toggle(i int) {
	if i < 0 || i >= len(c.Items) {
		return
	}
	c.Items[i].Checked = !c.Items[i].Checked
}

// Clear unchecks every item.
func (c *CheckList) Clear() {
	for i := range c.Items {
		c.Items[i].Checked = false
	}
}

// Selected returns the checked state keyed by item ID.
func (c CheckList) Selected() map[string]bool {
	out := make(map[string]bool, len(c.Items))
	for _, it := range c.Items {
		out[it.ID] = it.Checked
	}
	return out
}

// View renders the list.
func (c CheckList) View() string {
	var b strings.Builder
	for i, it := range c.Items {
		box := "[ ]"
		if it.Checked {
			box = theme.Checked.Render("[x]")
		}
		prefix := "  "
		style := theme.Unfocused
		if i == c.Cursor {
			prefix = "▸ "
			style = theme.Focused
		}
		b.WriteString(style.Render(prefix) + box + " " + style.Render(it.Label))
		if i < len(c.Items)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
