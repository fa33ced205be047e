package catalog

import "github.com/clauseguard-server/internal/domain"

// baselineChecklistItem is always emitted, even for a document with no
// findings at all.
const baselineChecklistItem = "Read the full document carefully before agreeing."

// checklistRules returns the pre-signing checklist rules. Order here is
// priority order: when more items fire than the checklist cap allows,
// earlier rules win. Conditions reference findings (key points, red flags,
// risk level), never the document text, so every emitted item is backed by
// something the report actually shows.
func checklistRules() []ChecklistRule {
	return []ChecklistRule{
		{
			Item:    "Given the high risk level, consider having a legal professional review this document.",
			MinRisk: domain.RiskHigh,
		},
		{
			Item:     "Understand that by signing you likely give up your right to sue in court.",
			RedFlags: []string{"mandatory-arbitration", "class-action-waiver", "jury-trial-waiver"},
		},
		{
			Item:      "Understand what assets are at risk if you default on your obligations.",
			KeyPoints: []domain.KeyPointCategory{domain.CategoryLoanDefault},
			RedFlags:  []string{"foreclosure", "repossession", "accelerated-repayment"},
		},
		{
			Item:      "Confirm the auto-renewal date and how to cancel before it triggers.",
			KeyPoints: []domain.KeyPointCategory{domain.CategoryAutoRenewal},
		},
		{
			Item:     "Note that there are no refunds, so be certain before committing.",
			RedFlags: []string{"no-refunds"},
		},
		{
			Item:      "Review exactly what personal data is collected and who it is shared with.",
			KeyPoints: []domain.KeyPointCategory{domain.CategoryPrivacy},
			RedFlags:  []string{"data-sale", "data-sharing"},
		},
		{
			Item:      "Review the non-compete clause; it may restrict your future employment.",
			KeyPoints: []domain.KeyPointCategory{domain.CategoryNonCompete},
			RedFlags:  []string{"long-non-compete"},
		},
		{
			Item:      "Verify how your health data is stored, protected, and who can access it.",
			KeyPoints: []domain.KeyPointCategory{domain.CategoryHealthData},
		},
		{
			Item:      "Check data caps, throttling thresholds, and roaming charges carefully.",
			KeyPoints: []domain.KeyPointCategory{domain.CategoryNetwork},
		},
		{
			Item:      "Document the property's condition at move-in to protect your security deposit.",
			KeyPoints: []domain.KeyPointCategory{domain.CategoryDeposit},
		},
		{
			Item:      "Review the liability and indemnification terms to understand your financial exposure.",
			KeyPoints: []domain.KeyPointCategory{domain.CategoryLiability},
			RedFlags:  []string{"legal-fee-indemnity", "liability-disclaimer"},
		},
		{
			Item:      "Check what rights you grant to the platform over content you upload.",
			KeyPoints: []domain.KeyPointCategory{domain.CategoryIP},
			RedFlags:  []string{"irrevocable-license", "perpetual-license"},
		},
		{
			Item:      "Check which jurisdiction's law governs disputes and whether that affects you.",
			KeyPoints: []domain.KeyPointCategory{domain.CategoryGoverningLaw},
		},
		{
			Item:       "Keep a copy of this document for your records once signed.",
			AnyFinding: true,
		},
	}
}
