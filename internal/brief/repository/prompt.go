package repository

import (
	"fmt"
	"strings"
)

// BuildBriefPrompt builds the fixed four-part prompt sent to the model for one
// article: translated title, 3-bullet summary, key quotations, sentiment. The
// response interpreter depends on the section labels used here.
func BuildBriefPrompt(title, link, content string) string {
	var contentSection string
	if content != "" {
		contentSection = fmt.Sprintf("\n본문 발췌:\n%s\n", truncateContent(content, 4000))
	}

	return fmt.Sprintf(`다음 영문 뉴스 제목을 분석해주세요:

제목: %s
링크: %s
%s
다음 형식으로 정확히 응답해주세요:
1. 한국어 제목: (영문 제목을 자연스러운 한국어로 번역)
2. 3줄 요약:
• (첫 번째 핵심 포인트)
• (두 번째 핵심 포인트)
• (세 번째 핵심 포인트 또는 시장 영향)
3. 핵심 문장:
> "(기사에서 가장 중요한 인용문 또는 핵심 문장 1)"
> "(두 번째 핵심 문장 - 있다면)"
4. 감성 분석: (호재/악재/중립 중 하나만 선택하고 간단한 이유)

주식 투자자 관점에서 분석해주세요. 핵심 문장은 기사의 핵심을 담은 실제 문장이나 주요 수치/발언을 한국어로 번역해서 인용해주세요.`,
		title, link, contentSection)
}

func truncateContent(content string, maxRunes int) string {
	runes := []rune(strings.TrimSpace(content))
	if len(runes) <= maxRunes {
		return string(runes)
	}
	return string(runes[:maxRunes])
}
