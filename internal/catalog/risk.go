package catalog

// riskPatterns returns the aggressiveness signals summed into the raw risk
// score. Every occurrence of a pattern counts, so a document that repeats
// "at our sole discretion" in ten sections scores higher than one that
// says it once.
func riskPatterns() []RiskPattern {
	return []RiskPattern{
		{Weight: 15, Category: "rights-waiver", Description: "Irrevocable grant or commitment", Expr: `irrevocable`},
		{Weight: 15, Category: "rights-waiver", Description: "Waiver of legal rights", Expr: `waive.*right`},
		{Weight: 15, Category: "refunds", Description: "No refunds offered", Expr: `no refund`},
		{Weight: 15, Category: "dispute-resolution", Description: "Class action waiver", Expr: `class action waiver`},
		{Weight: 15, Category: "dispute-resolution", Description: "Mandatory arbitration", Expr: `(binding|mandatory)\s+arbitration|arbitration\s+(is|shall be)\s+(binding|mandatory|required)`},
		{Weight: 15, Category: "collateral", Description: "Foreclosure on property", Expr: `foreclosure`},
		{Weight: 14, Category: "data-use", Description: "Sale of personal data", Expr: `sell.*personal (data|information)`},
		{Weight: 12, Category: "unilateral-control", Description: "Sole discretion over decisions", Expr: `at our sole discretion`},
		{Weight: 12, Category: "unilateral-control", Description: "Action without notice", Expr: `without (prior )?notice`},
		{Weight: 12, Category: "termination", Description: "Termination at any time", Expr: `may terminate.*at any time`},
		{Weight: 12, Category: "liability", Description: "Unlimited liability exposure", Expr: `unlimited liability`},
		{Weight: 12, Category: "data-use", Description: "Sharing personal data with third parties", Expr: `may share.*personal.*third`},
		{Weight: 12, Category: "financial-default", Description: "Cross-default provision", Expr: `cross.default`},
		{Weight: 12, Category: "financial-default", Description: "Acceleration clause", Expr: `accelerat\w*\s+(clause|of|repayment)`},
		{Weight: 12, Category: "financial-default", Description: "Wage garnishment", Expr: `wage.*garnish`},
		{Weight: 10, Category: "billing", Description: "Automatic renewal", Expr: `auto.?renew`},
		{Weight: 10, Category: "unilateral-control", Description: "Terms changed without notice", Expr: `may change.*terms.*without notice`},
		{Weight: 10, Category: "unilateral-control", Description: "Unilateral modification", Expr: `unilateral(ly)?.*modif`},
		{Weight: 10, Category: "employment", Description: "Non-compete restriction", Expr: `non.compete`},
		{Weight: 10, Category: "content-rights", Description: "Perpetual license over content", Expr: `perpetual.*licen`},
		{Weight: 10, Category: "surveillance", Description: "Location tracking", Expr: `track.*location`},
		{Weight: 10, Category: "surveillance", Description: "Communication monitoring", Expr: `monitor.*communication`},
		{Weight: 7, Category: "liability", Description: "Limitation of liability", Expr: `limitation of liability`},
		{Weight: 6, Category: "liability", Description: "Warranty disclaimer", Expr: `disclaimer of warranties`},
		{Weight: 6, Category: "liability", Description: "As-is provision", Expr: `\bas.is\b`},
		{Weight: 6, Category: "liability", Description: "Indemnification obligation", Expr: `indemnif`},
		{Weight: 5, Category: "boilerplate", Description: "Governing law clause", Expr: `governing law`},
		{Weight: 5, Category: "boilerplate", Description: "Dispute resolution clause", Expr: `dispute resolution`},
		{Weight: 5, Category: "boilerplate", Description: "Force majeure clause", Expr: `force majeure`},
		{Weight: 4, Category: "content-rights", Description: "Intellectual property terms", Expr: `intellectual property`},
		{Weight: 3, Category: "data-use", Description: "Cookie usage", Expr: `cookies`},
		{Weight: 3, Category: "data-use", Description: "Aggregated data use", Expr: `aggregate.*data`},
	}
}
