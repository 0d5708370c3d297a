package harvest

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	chapterRE  = regexp.MustCompile(`(?i)^CHAPTER\s+(\d+)(.*)`)
	numberedRE = regexp.MustCompile(`^\d+\.\s+`)
	allCapsRE  = regexp.MustCompile(`^[A-Z][A-Z\s]+$`)
	blanksRE   = regexp.MustCompile(`\n{3,}`)

	titleCaser = cases.Title(language.English)
)

// NormalizeText converts raw extracted text into markdown with heading and
// paragraph structure inferred from line-level cues:
//
//   - "CHAPTER n" lines become a level-1 heading "Chapter n[: title]"
//   - numbered-list lines are kept as-is
//   - all-caps lines become level-2 headings in title case
//   - short lines ending with a colon become level-3 headings
//   - everything else becomes its own paragraph
//
// Runs of three or more blank lines collapse to exactly one blank line.
func NormalizeText(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		switch {
		case chapterRE.MatchString(line):
			m := chapterRE.FindStringSubmatch(line)
			num, title := m[1], strings.TrimSpace(m[2])
			if title != "" {
				out = append(out, "# Chapter "+num+": "+title)
			} else {
				out = append(out, "# Chapter "+num)
			}
		case numberedRE.MatchString(line):
			out = append(out, line)
		case allCapsRE.MatchString(line) && len(line) > 3:
			out = append(out, "## "+titleCaser.String(line))
		case strings.HasSuffix(line, ":") && len(line) < 100:
			out = append(out, "### "+line)
		default:
			out = append(out, line)
		}
	}

	return blanksRE.ReplaceAllString(strings.Join(out, "\n\n"), "\n\n")
}
