package lesson

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const exportRule = "═══════════════════════════════════════════════════════════════\n"
const exportRuleThin = "───────────────────────────────────────────────────────────────\n"

// StudySheet renders a lesson as the plain-text handout users download for
// offline review.
func StudySheet(l Lesson, now time.Time) string {
	var b strings.Builder
	b.WriteString(exportRule)
	fmt.Fprintf(&b, "           TrendoSpeak: %s\n", l.Title)
	b.WriteString(exportRule)
	fmt.Fprintf(&b, "Mavzu: %s\n", l.Topic)
	fmt.Fprintf(&b, "Sana: %s\n", now.Format("02/01/2006"))
	b.WriteString("\n")
	b.WriteString(exportRuleThin)
	b.WriteString("                    YANGI SO'ZLAR (VOCABULARY)\n")
	b.WriteString(exportRuleThin)
	b.WriteString("\n")

	for i, w := range l.Words {
		fmt.Fprintf(&b, "%d. %s - %s\n", i+1, w.Term, w.Translation)
		fmt.Fprintf(&b, "   📝 %s\n\n", w.Note)
	}

	b.WriteString(exportRuleThin)
	b.WriteString("                    FOYDALI MISOLLAR (EXAMPLES)\n")
	b.WriteString(exportRuleThin)
	b.WriteString("\n")

	if len(l.Examples) == 0 {
		b.WriteString("Misollar mavjud emas.\n")
	} else {
		for i, ex := range l.Examples {
			fmt.Fprintf(&b, "%d. 🇬🇧 %s\n", i+1, ex.English)
			fmt.Fprintf(&b, "   🇺🇿 %s\n\n", ex.Uzbek)
		}
	}

	b.WriteString("\n")
	b.WriteString(exportRule)
	b.WriteString("                 TrendoSpeak AI maxsus darsligi\n")
	b.WriteString(exportRule)
	return b.String()
}

// ExportFileName is the canonical download name for a lesson sheet.
func ExportFileName(l Lesson) string {
	return fmt.Sprintf("TrendoSpeak_Dars_%d.txt", l.ID)
}

// WriteStudySheet saves the study sheet for l into dir and returns the
// written path.
func WriteStudySheet(l Lesson, dir string, now time.Time) (string, error) {
	path := strings.TrimRight(dir, "/") + "/" + ExportFileName(l)
	if err := os.WriteFile(path, []byte(StudySheet(l, now)), 0o644); err != nil {
		return "", fmt.Errorf("lesson: write study sheet: %w", err)
	}
	return path, nil
}
