package engine

import (
	"math"
	"regexp"
	"strings"

	"github.com/clauseguard-server/internal/domain"
)

var (
	reWord       = regexp.MustCompile(`[a-zA-Z']+`)
	reVowelGroup = regexp.MustCompile(`[aeiouy]+`)
	reIonSuffix  = regexp.MustCompile(`[^aeiouy]ion`)
	reNonAlpha   = regexp.MustCompile(`[^a-z]`)
	reSentSplit  = regexp.MustCompile(`[.!?]+`)
)

// computeReadability scores the text with the Flesch Reading Ease,
// Flesch-Kincaid grade and Gunning Fog formulas over a heuristic syllable
// counter. Absolute accuracy matters less than stable relative scoring
// between documents.
func computeReadability(doc *document) domain.ReadabilityScore {
	var sentences int
	for _, s := range reSentSplit.Split(doc.raw, -1) {
		if strings.TrimSpace(s) != "" {
			sentences++
		}
	}
	words := reWord.FindAllString(doc.raw, -1)

	numSentences := float64(sentences)
	if numSentences < 1 {
		numSentences = 1
	}
	numWords := float64(len(words))
	if numWords < 1 {
		numWords = 1
	}

	var syllables, complexWords, totalChars int
	for _, w := range words {
		s := countSyllables(w)
		syllables += s
		if s >= 3 {
			complexWords++
		}
		totalChars += len(w)
	}

	avgSentenceLen := round1(numWords / numSentences)
	avgWordLen := round1(float64(totalChars) / numWords)
	complexPct := round1(float64(complexWords) / numWords * 100)

	fleschEase := round1(206.835 - 1.015*(numWords/numSentences) - 84.6*(float64(syllables)/numWords))
	fleschEase = math.Max(0, math.Min(100, fleschEase))

	fleschGrade := round1(0.39*(numWords/numSentences) + 11.8*(float64(syllables)/numWords) - 15.59)
	fleschGrade = math.Max(0, fleschGrade)

	gunningFog := round1(0.4 * (avgSentenceLen + complexPct))

	gradeLabel, easeLabel := readabilityLabels(fleschEase)

	return domain.ReadabilityScore{
		FleschEase:     fleschEase,
		FleschGrade:    fleschGrade,
		GunningFog:     gunningFog,
		AvgSentenceLen: avgSentenceLen,
		AvgWordLen:     avgWordLen,
		ComplexWordPct: complexPct,
		GradeLabel:     gradeLabel,
		EaseLabel:      easeLabel,
	}
}

// countSyllables estimates by counting vowel groups, discounting a silent
// trailing 'e' and re-adding consonant+"ion" endings that collapse into
// one group. Accurate enough for relative scoring.
func countSyllables(word string) int {
	w := reNonAlpha.ReplaceAllString(strings.ToLower(word), "")
	if w == "" {
		return 1
	}
	count := len(reVowelGroup.FindAllString(w, -1))
	if strings.HasSuffix(w, "e") && len(w) > 2 && !strings.ContainsRune("aeiou", rune(w[len(w)-2])) {
		count--
	}
	count += len(reIonSuffix.FindAllString(w, -1))
	if count < 1 {
		count = 1
	}
	return count
}

func readabilityLabels(fleschEase float64) (string, string) {
	switch {
	case fleschEase >= 80:
		return "Very Easy", "Plain English: anyone can understand this."
	case fleschEase >= 65:
		return "Easy", "Fairly accessible language; most adults can follow it."
	case fleschEase >= 50:
		return "Moderate", "Requires some concentration, comparable to a magazine article."
	case fleschEase >= 35:
		return "Difficult", "Academic-level language that requires careful reading."
	case fleschEase >= 20:
		return "Very Difficult", "Dense legal or technical writing; hard to follow for most people."
	default:
		return "Very Confusing", "Extremely complex; consider asking a professional to explain it."
	}
}

func round1(f float64) float64 {
	return math.Round(f*10) / 10
}
