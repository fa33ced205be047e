package compare

import (
	"fmt"
	"strings"
)

// strengths describes what a document does well relative to its peers.
func strengths(r DocRanking, all []DocRanking) []string {
	avgRisk, avgFlags := peerAverages(all)

	var items []string
	if float64(r.Result.Risk.Score) < avgRisk-10 {
		items = append(items, fmt.Sprintf("Risk score (%d/100) is well below average", r.Result.Risk.Score))
	}
	if float64(len(r.Result.RedFlags)) < avgFlags {
		items = append(items, "Fewer red flags than most alternatives")
	}
	var good []string
	for _, kp := range r.Result.KeyPoints {
		if !kp.WatchOut {
			good = append(good, string(kp.Category))
		}
	}
	if len(good) > 0 {
		if len(good) > 3 {
			good = good[:3]
		}
		items = append(items, "Favourable terms on: "+strings.Join(good, ", "))
	}
	if r.Result.Readability.FleschEase >= 50 {
		items = append(items, "Written in relatively plain language")
	}

	if len(items) == 0 {
		return []string{"No particular strengths identified"}
	}
	if len(items) > 3 {
		items = items[:3]
	}
	return items
}

// weaknesses describes a document's key concerns relative to its peers.
func weaknesses(r DocRanking, all []DocRanking) []string {
	avgRisk, _ := peerAverages(all)

	var items []string
	if float64(r.Result.Risk.Score) > avgRisk+10 {
		items = append(items, fmt.Sprintf("Risk score (%d/100) is above average", r.Result.Risk.Score))
	}
	if n := len(r.Result.RedFlags); n > 0 {
		items = append(items, fmt.Sprintf("%d red flag(s) detected", n))
	}
	var concerning []string
	for _, kp := range r.Result.KeyPoints {
		if kp.WatchOut {
			concerning = append(concerning, string(kp.Category))
		}
	}
	if len(concerning) > 0 {
		if len(concerning) > 3 {
			concerning = concerning[:3]
		}
		items = append(items, "Concerning clauses: "+strings.Join(concerning, ", "))
	}
	if r.Result.Readability.FleschEase > 0 && r.Result.Readability.FleschEase < 35 {
		items = append(items, "Complex, hard-to-follow language")
	}

	if len(items) > 3 {
		items = items[:3]
	}
	return items
}

func peerAverages(all []DocRanking) (avgRisk, avgFlags float64) {
	for _, r := range all {
		avgRisk += float64(r.Result.Risk.Score)
		avgFlags += float64(len(r.Result.RedFlags))
	}
	n := float64(len(all))
	return avgRisk / n, avgFlags / n
}

// buildRecommendation explains why the safest document won and produces a
// short plain-English pick. Rankings are riskiest-first, so the safest is
// the last entry.
func buildRecommendation(rankings []DocRanking) (reason, recommendation string) {
	safest := rankings[len(rankings)-1]
	riskiest := rankings[0]
	n := len(rankings)

	var parts []string
	if safest.Result.Risk.Score < 30 {
		parts = append(parts, fmt.Sprintf("low risk score of %d/100", safest.Result.Risk.Score))
	}
	if len(safest.Result.RedFlags) == 0 {
		parts = append(parts, "no red flags")
	} else if len(safest.Result.RedFlags) < len(riskiest.Result.RedFlags) {
		parts = append(parts, fmt.Sprintf("fewest red flags (%d)", len(safest.Result.RedFlags)))
	}
	if safest.WatchCount == 0 {
		parts = append(parts, "no concerning clauses")
	}
	if len(parts) > 0 {
		reason = "Ranked safest due to its " + strings.Join(parts, ", ") + "."
	} else {
		reason = fmt.Sprintf("Ranked safest with the lowest risk score among all %d documents.", n)
	}

	gap := riskiest.Result.Risk.Score - safest.Result.Risk.Score
	strength := "slightly"
	switch {
	case gap >= 30:
		strength = "significantly"
	case gap >= 15:
		strength = "meaningfully"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Based on the analysis of %d documents, %s is %s the safest choice. ", n, safest.Name, strength)
	if len(safest.Strengths) > 0 && safest.Strengths[0] != "No particular strengths identified" {
		fmt.Fprintf(&b, "It stands out for: %s. ", strings.ToLower(safest.Strengths[0][:1])+safest.Strengths[0][1:])
	}
	if n > 2 {
		second := rankings[len(rankings)-2]
		if second.Result.Risk.Score-safest.Result.Risk.Score < 5 {
			fmt.Fprintf(&b, "%s is a close second and also a reasonable option. ", second.Name)
		}
	}
	if len(riskiest.Result.RedFlags) > 0 {
		fmt.Fprintf(&b, "Avoid %s if possible; it carries %d red flag(s) and scored %d/100 on risk.",
			riskiest.Name, len(riskiest.Result.RedFlags), riskiest.Result.Risk.Score)
	}

	return reason, strings.TrimSpace(b.String())
}
