package pretty

import "fmt"

// FormatFmtResult formats the outcome of `markdoc fmt` on a single file.
func (s *Styles) FormatFmtResult(path string, changed bool, checkOnly bool) string {
	switch {
	case !changed:
		return s.Success.Render("unchanged") + " " + s.FilePath.Render(path) + "\n"
	case checkOnly:
		return s.Failure.Render("would reformat") + " " + s.FilePath.Render(path) + "\n"
	default:
		return s.Success.Render("reformatted") + " " + s.FilePath.Render(path) + "\n"
	}
}

// FormatQuerySummary formats the trailing match-count line for `markdoc query`.
func (s *Styles) FormatQuerySummary(count int) string {
	word := "matches"
	if count == 1 {
		word = "match"
	}
	return s.Dim.Render(fmt.Sprintf("%d %s", count, word)) + "\n"
}
