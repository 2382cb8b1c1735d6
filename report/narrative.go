package report

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"press-monitor/analytics"
)

const narrativeMediaRows = 5

var markdown = goldmark.New(goldmark.WithExtensions(extension.Table))

// Narrative writes the "basic coverage analysis" paragraph of the dashboard
// as markdown.
func Narrative(result analytics.Result) string {
	s := result.Aggregation.Summary
	if result.Status == analytics.StatusEmpty {
		return "Tidak ada siaran pers yang sesuai dengan filter."
	}

	var b strings.Builder
	b.WriteString("#### Analisis Dasar Pemberitaan\n\n")
	fmt.Fprintf(&b, "Monitoring pemberitaan dilakukan terhadap **%d siaran pers atau %.1f%%** dari total **%d siaran pers** ",
		s.TotalReleasesWithCoverage, s.PercentageWithCoverage, s.TotalReleases)
	fmt.Fprintf(&b, "pada periode %s s/d %s (jendela %d hari, mode %s).\n\n",
		analytics.FormatDate(&result.Start), analytics.FormatDate(&result.End), result.WindowDays, result.Mode)

	if s.TotalReleasesWithCoverage == 0 {
		b.WriteString("Belum ada pemberitaan yang tercatat untuk siaran pers pada periode ini.\n")
		return b.String()
	}

	fmt.Fprintf(&b, "- Rata-rata **%.1f berita** per siaran pers yang diberitakan\n", s.MeanCoveragePerReleaseWithCoverage)
	fmt.Fprintf(&b, "- Rata-rata **%.1f media** per siaran pers yang diberitakan\n", s.MeanUniqueMediaPerReleaseWithCoverage)
	if top := s.ReleaseWithMaxCoverage; top != nil {
		fmt.Fprintf(&b, "- Pemberitaan terbanyak: *%s* (%d berita)\n", escape(top.ReleaseTitle), top.MatchedCoverageCount)
	}
	if top := s.ReleaseWithMaxMediaSpread; top != nil {
		fmt.Fprintf(&b, "- Sebaran media terluas: *%s* (%d media)\n", escape(top.ReleaseTitle), top.UniqueMediaCount)
	}

	if len(result.TopMedia) > 0 {
		b.WriteString("\n| Media | Jumlah Artikel |\n|---|---:|\n")
		for i, media := range result.TopMedia {
			if i == narrativeMediaRows {
				break
			}
			fmt.Fprintf(&b, "| %s | %d |\n", strings.ReplaceAll(escape(media.Name), "|", `\|`), media.Count)
		}
	}
	return b.String()
}

// NarrativeHTML renders Narrative to HTML for the dashboard template.
func NarrativeHTML(result analytics.Result) (template.HTML, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(Narrative(result)), &buf); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`, `*`, `\*`, `_`, `\_`, "`", "\\`", `[`, `\[`, `]`, `\]`, `<`, `&lt;`, `>`, `&gt;`,
)

func escape(text string) string {
	return markdownEscaper.Replace(text)
}
