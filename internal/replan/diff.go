package replan

import (
	"fmt"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/jengzang/voyager-backend-go/internal/models"
)

// Diff renders a unified diff between two arrangements of the same day,
// one line per activity. An empty string means nothing changed.
func Diff(day int, before, after []models.Activity) (string, error) {
	diff := difflib.UnifiedDiff{
		A:        planLines(before),
		B:        planLines(after),
		FromFile: fmt.Sprintf("day-%d/before", day),
		ToFile:   fmt.Sprintf("day-%d/after", day),
		Context:  3,
	}

	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return "", fmt.Errorf("failed to diff day %d: %w", day, err)
	}
	return text, nil
}

func planLines(activities []models.Activity) []string {
	lines := make([]string, 0, len(activities))
	for _, a := range activities {
		var b strings.Builder
		fmt.Fprintf(&b, "%s | %s", a.Time, a.Place)
		if a.IsRemoved() {
			fmt.Fprintf(&b, " | removed: %s", a.Reason)
		}
		b.WriteString("\n")
		lines = append(lines, b.String())
	}
	return lines
}
