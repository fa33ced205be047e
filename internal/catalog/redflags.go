package catalog

import "github.com/clauseguard-server/internal/domain"

// redFlagPatterns returns the high-concern clause patterns. Unlike risk
// patterns these are reported individually, one flag per distinct match
// span, with the matched span itself as verifiable evidence.
func redFlagPatterns() []RedFlagPattern {
	return []RedFlagPattern{
		{
			Category:    "data-sale",
			Severity:    domain.SeverityHigh,
			Description: "May sell your personal data to third parties.",
			Expr:        `sell.*personal (data|information)`,
		},
		{
			Category:    "data-sharing",
			Severity:    domain.SeverityMedium,
			Description: "Your data may be shared with unspecified third parties.",
			Expr:        `share.*with.*third.part`,
		},
		{
			Category:    "location-tracking",
			Severity:    domain.SeverityMedium,
			Description: "Your location data may be tracked.",
			Expr:        `track.*location`,
		},
		{
			Category:    "communication-monitoring",
			Severity:    domain.SeverityHigh,
			Description: "Provider may monitor your private communications.",
			Expr:        `monitor.*communication`,
		},
		{
			Category:    "class-action-waiver",
			Severity:    domain.SeverityHigh,
			Description: "Waives your right to participate in class action lawsuits.",
			Expr:        `class action waiver`,
		},
		{
			Category:    "mandatory-arbitration",
			Severity:    domain.SeverityHigh,
			Description: "Requires mandatory arbitration, limiting your ability to sue in court.",
			Expr:        `(binding|mandatory)\s+arbitration|arbitration\s+(is|shall be)\s+(binding|mandatory|required)`,
		},
		{
			Category:    "jury-trial-waiver",
			Severity:    domain.SeverityHigh,
			Description: "Waives your right to a trial by jury.",
			Expr:        `waive\w*[^.!?\n]{0,60}jury|jury trial waiver`,
		},
		{
			Category:    "rights-waiver",
			Severity:    domain.SeverityHigh,
			Description: "Contains clauses where you waive important legal rights.",
			Expr:        `waive.*right`,
		},
		{
			Category:    "irrevocable-license",
			Severity:    domain.SeverityMedium,
			Description: "Grants an irrevocable license over your content.",
			Expr:        `irrevocable.*licen`,
		},
		{
			Category:    "perpetual-license",
			Severity:    domain.SeverityMedium,
			Description: "Grants unlimited, perpetual, royalty-free use of your content.",
			Expr:        `perpetual.*licen.*royalty.free`,
		},
		{
			Category:    "no-refunds",
			Severity:    domain.SeverityMedium,
			Description: "No refunds under any circumstances.",
			Expr:        `no refund|non.refundable|all sales final`,
		},
		{
			Category:    "accelerated-repayment",
			Severity:    domain.SeverityHigh,
			Description: "Default may trigger immediate repayment of the full balance.",
			Expr:        `accelerat.*repayment|full.*amount.*due`,
		},
		{
			Category:    "wage-garnishment",
			Severity:    domain.SeverityHigh,
			Description: "Wages may be garnished in case of default.",
			Expr:        `wage.*garnish`,
		},
		{
			Category:    "terms-change-without-notice",
			Severity:    domain.SeverityMedium,
			Description: "Terms can be changed without notifying you.",
			Expr:        `(modif|change|amend)\w*[^.!?\n]{0,80}without[^.!?\n]{0,40}notice`,
		},
		{
			Category:    "termination-without-notice",
			Severity:    domain.SeverityMedium,
			Description: "Account can be terminated without any notice.",
			Expr:        `terminat.*without (prior )?notice`,
		},
		{
			Category:    "sole-discretion",
			Severity:    domain.SeverityMedium,
			Description: "Provider has unchecked discretion on key decisions.",
			Expr:        `at our sole discretion`,
		},
		{
			Category:    "unilateral-modification",
			Severity:    domain.SeverityMedium,
			Description: "Provider can unilaterally modify the agreement.",
			Expr:        `unilateral(ly)?[^.!?\n]{0,80}modif`,
		},
		{
			Category:    "liability-disclaimer",
			Severity:    domain.SeverityMedium,
			Description: "Provider disclaims all responsibility for losses.",
			Expr:        `not (responsible|liable)[^.!?\n]{0,60}(loss|damage)`,
		},
		{
			Category:    "legal-fee-indemnity",
			Severity:    domain.SeverityMedium,
			Description: "You may be liable for the provider's legal fees.",
			Expr:        `indemnif[^.!?\n]{0,80}attorney[^.!?\n]{0,40}fees`,
		},
		{
			Category:    "foreclosure",
			Severity:    domain.SeverityHigh,
			Description: "Non-payment may result in foreclosure of your property.",
			Expr:        `foreclosure`,
		},
		{
			Category:    "long-non-compete",
			Severity:    domain.SeverityMedium,
			Description: "Non-compete clause restricts you for a multi-year period.",
			Expr:        `non.compete[^.!?\n]{0,60}\d+\s*year`,
		},
		{
			Category:    "cross-default",
			Severity:    domain.SeverityMedium,
			Description: "Default on one obligation may trigger default on all.",
			Expr:        `cross.default`,
		},
		{
			Category:    "repossession",
			Severity:    domain.SeverityHigh,
			Description: "Assets may be repossessed in case of default.",
			Expr:        `repossess`,
		},
	}
}
