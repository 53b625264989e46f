package share

import (
	"strings"

	"github.com/mrlokans/devotional/internal/entities"
)

const prayerFooter = "—\nShared from Daily Prayer"

// PrayerTitle is the share title for a prayer, e.g. "Morning Prayer".
func PrayerTitle(tod entities.TimeOfDay) string {
	return tod.Label() + " Prayer"
}

// StudyTitle is the share title for a study.
func StudyTitle(title string) string {
	return "Bible Study: " + title
}

// FormatPrayerText renders a prayer as shareable plain text.
func FormatPrayerText(prayer entities.DailyPrayer, tod entities.TimeOfDay) string {
	var b strings.Builder
	b.WriteString(PrayerTitle(tod) + "\n\n")
	b.WriteString(prayer.Call + "\n\n")

	b.WriteString("📖 Scripture\n")
	b.WriteString(`"` + prayer.Scripture.Text + `"` + "\n")
	b.WriteString("— " + prayer.Scripture.Reference + "\n\n")

	b.WriteString("✨ Reflection\n")
	b.WriteString(prayer.Reflection + "\n\n")

	b.WriteString("🙏 Pray\n")
	for i, p := range prayer.Prompts {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("• " + p)
	}
	b.WriteString("\n\n")

	b.WriteString("🕊️ Benediction\n")
	b.WriteString(prayer.Benediction + "\n\n")

	b.WriteString(prayerFooter)
	return b.String()
}
