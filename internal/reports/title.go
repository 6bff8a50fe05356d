package reports

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var (
	jobTitleRe = regexp.MustCompile(`(?:岗位|职位|招聘)[:：]?\s*([^\n,，。]+)`)
	nameRe     = regexp.MustCompile(`(?:姓名|Name)[:：]?\s*([^\n,，。]+)`)

	// Candidate-name line: 2-10 CJK/latin characters, nothing else.
	resumeNameRe = regexp.MustCompile(`^[\x{4e00}-\x{9fa5}a-zA-Z\s]{2,10}$`)
	occupationRe = regexp.MustCompile(`(工程师|经理|主管|总监|专员|助理|顾问|分析师|设计师|开发|产品|运营|市场|销售)`)
)

// GenerateTitle derives a short human-readable title from free text.
// Pattern matching is deterministic and order-sensitive: first match wins.
func GenerateTitle(content string, typ ReportType) string {
	firstLine := firstNonBlankLine(content)

	if typ == TypeAnalysis {
		if m := jobTitleRe.FindStringSubmatch(firstLine); m != nil {
			return strings.TrimSpace(m[1])
		}
		if title := truncateRunes(firstLine, 30); title != "" {
			return title
		}
		return "未命名分析报告"
	}

	if m := nameRe.FindStringSubmatch(firstLine); m != nil {
		return strings.TrimSpace(m[1]) + "的简历"
	}
	if title := truncateRunes(firstLine, 20); title != "" {
		return title + " - 美化简历"
	}
	return "未命名美化简历"
}

// ExtractResumeTitle picks a title for a beautified resume from its raw
// text: a bare name line within the first five non-blank lines wins, then
// an occupation line, then a dated fallback.
func ExtractResumeTitle(content string) string {
	lines := nonBlankLines(content)
	if len(lines) > 5 {
		lines = lines[:5]
	}

	for _, line := range lines {
		if resumeNameRe.MatchString(line) && !occupationRe.MatchString(line) {
			return line
		}
	}
	for _, line := range lines {
		if occupationRe.MatchString(line) {
			return line
		}
	}
	return fmt.Sprintf("简历_%s", time.Now().Format("2006-01-02"))
}

func firstNonBlankLine(content string) string {
	lines := nonBlankLines(content)
	if len(lines) == 0 {
		return ""
	}
	return lines[0]
}

func nonBlankLines(content string) []string {
	var out []string
	for _, line := range strings.Split(content, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
