package catalog

import "github.com/clauseguard-server/internal/domain"

// classificationRules returns the weighted keyword tables for the twenty
// concrete document types, in tie-break priority order. Weights reflect
// how discriminating a term is: 3 for vocabulary that rarely appears
// outside that document family, 1 for generic contract language.
func classificationRules() []ClassificationRule {
	return []ClassificationRule{
		{Type: domain.DocTypeInsurance, Patterns: []ClassificationPattern{
			{Trigger: "policyholder", Expr: `policyholder`, Weight: 3},
			{Trigger: "deductible", Expr: `deductible`, Weight: 3},
			{Trigger: "underwr", Expr: `underwr`, Weight: 3},
			{Trigger: "actuar", Expr: `actuar`, Weight: 3},
			{Trigger: "beneficiar", Expr: `beneficiar`, Weight: 2},
			{Trigger: "premium", Expr: `premium`, Weight: 2},
			{Trigger: "insur", Expr: `insur\w+`, Weight: 2},
			{Trigger: "coverage", Expr: `coverage`, Weight: 1},
			{Trigger: "claim", Expr: `claim`, Weight: 1},
		}},
		{Type: domain.DocTypeMortgage, Patterns: []ClassificationPattern{
			{Trigger: "mortgage", Expr: `mortgage`, Weight: 3},
			{Trigger: "foreclosure", Expr: `foreclosure`, Weight: 3},
			{Trigger: "escrow", Expr: `escrow`, Weight: 3},
			{Trigger: "amortiz", Expr: `amortiz`, Weight: 3},
			{Trigger: "lien", Expr: `\blien\b`, Weight: 2},
			{Trigger: "deed", Expr: `\bdeed\b`, Weight: 2},
			{Trigger: "real estate", Expr: `real estate`, Weight: 2},
			{Trigger: "property", Expr: `\bproperty\b`, Weight: 1},
		}},
		{Type: domain.DocTypeLoan, Patterns: []ClassificationPattern{
			{Trigger: "credit", Expr: `credit\s+facilit`, Weight: 3},
			{Trigger: "lender", Expr: `\blender\b`, Weight: 3},
			{Trigger: "loan", Expr: `\bloan\b`, Weight: 2},
			{Trigger: "borrow", Expr: `borrow`, Weight: 2},
			{Trigger: "principal", Expr: `\bprincipal\b`, Weight: 2},
			{Trigger: "interest rate", Expr: `interest rate`, Weight: 2},
			{Trigger: "repayment", Expr: `repayment`, Weight: 2},
			{Trigger: "collateral", Expr: `collateral`, Weight: 2},
			{Trigger: "default", Expr: `\bdefault\b`, Weight: 1},
		}},
		{Type: domain.DocTypeInvestment, Patterns: []ClassificationPattern{
			{Trigger: "securities", Expr: `securities`, Weight: 3},
			{Trigger: "fiduciary", Expr: `fiduciary`, Weight: 3},
			{Trigger: "risk", Expr: `risk\s+disclosur`, Weight: 3},
			{Trigger: "portfolio", Expr: `portfolio`, Weight: 2},
			{Trigger: "dividend", Expr: `dividend`, Weight: 2},
			{Trigger: "broker", Expr: `\bbroker\b`, Weight: 2},
			{Trigger: "invest", Expr: `invest\w+`, Weight: 1},
			{Trigger: "share", Expr: `\bshare\b`, Weight: 1},
			{Trigger: "fund", Expr: `\bfund\b`, Weight: 1},
		}},
		{Type: domain.DocTypeLease, Patterns: []ClassificationPattern{
			{Trigger: "landlord", Expr: `landlord`, Weight: 3},
			{Trigger: "tenant", Expr: `\btenant\b`, Weight: 3},
			{Trigger: "tenancy", Expr: `tenancy`, Weight: 3},
			{Trigger: "eviction", Expr: `eviction`, Weight: 3},
			{Trigger: "security deposit", Expr: `security deposit`, Weight: 3},
			{Trigger: "vacate", Expr: `notice to vacate`, Weight: 3},
			{Trigger: "lease", Expr: `\blease\b`, Weight: 2},
			{Trigger: "premises", Expr: `premises`, Weight: 2},
			{Trigger: "rent", Expr: `\brent\b`, Weight: 1},
		}},
		{Type: domain.DocTypeEmployment, Patterns: []ClassificationPattern{
			{Trigger: "severance", Expr: `severance`, Weight: 3},
			{Trigger: "probation", Expr: `probation\w+`, Weight: 2},
			{Trigger: "compete", Expr: `non.compete`, Weight: 2},
			{Trigger: "salary", Expr: `\bsalary\b`, Weight: 2},
			{Trigger: "employ", Expr: `employ\w+`, Weight: 1},
			{Trigger: "termination", Expr: `termination`, Weight: 1},
			{Trigger: "confidentialit", Expr: `confidentialit`, Weight: 1},
		}},
		{Type: domain.DocTypeSaaS, Patterns: []ClassificationPattern{
			{Trigger: "saas", Expr: `\bsaas\b`, Weight: 3},
			{Trigger: "software", Expr: `software.as.a.service`, Weight: 3},
			{Trigger: "license", Expr: `license\s+grant`, Weight: 2},
			{Trigger: "licen", Expr: `end.user\s+licen`, Weight: 2},
			{Trigger: "api", Expr: `api\s+access`, Weight: 2},
			{Trigger: "seat", Expr: `\bseat\b`, Weight: 1},
		}},
		{Type: domain.DocTypeMobileApp, Patterns: []ClassificationPattern{
			{Trigger: "app store", Expr: `app store`, Weight: 3},
			{Trigger: "google play", Expr: `google play`, Weight: 3},
			{Trigger: "app purchase", Expr: `in.app purchase`, Weight: 3},
			{Trigger: "mobile app", Expr: `mobile app`, Weight: 2},
			{Trigger: "push notification", Expr: `push notification`, Weight: 2},
			{Trigger: "device", Expr: `device\s+permiss`, Weight: 2},
		}},
		{Type: domain.DocTypeCloud, Patterns: []ClassificationPattern{
			{Trigger: "sla", Expr: `\bsla\b`, Weight: 3},
			{Trigger: "service level", Expr: `service level`, Weight: 2},
			{Trigger: "data center", Expr: `data center`, Weight: 2},
			{Trigger: "uptime", Expr: `\buptime\b`, Weight: 2},
			{Trigger: "cloud", Expr: `\bcloud\b`, Weight: 2},
			{Trigger: "storage", Expr: `storage\s+capacit`, Weight: 2},
			{Trigger: "infrastructure", Expr: `infrastructure`, Weight: 1},
		}},
		{Type: domain.DocTypeOpenSource, Patterns: []ClassificationPattern{
			{Trigger: "copyleft", Expr: `copyleft`, Weight: 3},
			{Trigger: "mit license", Expr: `mit license`, Weight: 3},
			{Trigger: "apache license", Expr: `apache license`, Weight: 3},
			{Trigger: "gnu", Expr: `\bgnu\b`, Weight: 3},
			{Trigger: "open", Expr: `open.source`, Weight: 2},
			{Trigger: "redistribute", Expr: `redistribute`, Weight: 2},
			{Trigger: "permissive", Expr: `permissive`, Weight: 2},
		}},
		{Type: domain.DocTypeECommerce, Patterns: []ClassificationPattern{
			{Trigger: "shopping cart", Expr: `shopping cart`, Weight: 3},
			{Trigger: "order confirmation", Expr: `order confirmation`, Weight: 3},
			{Trigger: "checkout", Expr: `checkout`, Weight: 2},
			{Trigger: "refund policy", Expr: `refund policy`, Weight: 2},
			{Trigger: "return policy", Expr: `return policy`, Weight: 2},
			{Trigger: "seller", Expr: `\bseller\b`, Weight: 1},
			{Trigger: "buyer", Expr: `\bbuyer\b`, Weight: 1},
		}},
		{Type: domain.DocTypeSubscription, Patterns: []ClassificationPattern{
			{Trigger: "billing cycle", Expr: `billing cycle`, Weight: 3},
			{Trigger: "free trial", Expr: `free trial`, Weight: 2},
			{Trigger: "monthly plan", Expr: `monthly plan`, Weight: 2},
			{Trigger: "annual plan", Expr: `annual plan`, Weight: 2},
			{Trigger: "subscription", Expr: `subscription`, Weight: 2},
			{Trigger: "upgrade", Expr: `\bupgrade\b`, Weight: 1},
			{Trigger: "downgrade", Expr: `\bdowngrade\b`, Weight: 1},
		}},
		{Type: domain.DocTypeStreaming, Patterns: []ClassificationPattern{
			{Trigger: "simultaneous", Expr: `simultaneous stream`, Weight: 3},
			{Trigger: "content library", Expr: `content library`, Weight: 3},
			{Trigger: "episode", Expr: `episode`, Weight: 2},
			{Trigger: "playlist", Expr: `playlist`, Weight: 2},
			{Trigger: "download", Expr: `download.*offline`, Weight: 2},
			{Trigger: "stream", Expr: `stream\w+`, Weight: 1},
			{Trigger: "watch", Expr: `\bwatch\b`, Weight: 1},
		}},
		{Type: domain.DocTypeTravel, Patterns: []ClassificationPattern{
			{Trigger: "itinerary", Expr: `itinerary`, Weight: 3},
			{Trigger: "cancellation policy", Expr: `cancellation policy`, Weight: 2},
			{Trigger: "booking", Expr: `booking`, Weight: 2},
			{Trigger: "reservation", Expr: `reservation`, Weight: 2},
			{Trigger: "hotel", Expr: `\bhotel\b`, Weight: 2},
			{Trigger: "flight", Expr: `\bflight\b`, Weight: 2},
			{Trigger: "passenger", Expr: `passenger`, Weight: 2},
			{Trigger: "check", Expr: `check.in`, Weight: 1},
			{Trigger: "check", Expr: `check.out`, Weight: 1},
			{Trigger: "travel", Expr: `travell?\w+`, Weight: 1},
		}},
		{Type: domain.DocTypeTelecom, Patterns: []ClassificationPattern{
			{Trigger: "roaming", Expr: `roaming`, Weight: 3},
			{Trigger: "sim card", Expr: `sim card`, Weight: 3},
			{Trigger: "broadband", Expr: `broadband`, Weight: 3},
			{Trigger: "data plan", Expr: `data plan`, Weight: 2},
			{Trigger: "mobile plan", Expr: `mobile plan`, Weight: 2},
			{Trigger: "network", Expr: `network\s+coverage`, Weight: 2},
			{Trigger: "telecom", Expr: `telecom`, Weight: 2},
			{Trigger: "carrier", Expr: `\bcarrier\b`, Weight: 1},
		}},
		{Type: domain.DocTypeHealthcare, Patterns: []ClassificationPattern{
			{Trigger: "hipaa", Expr: `\bhipaa\b`, Weight: 3},
			{Trigger: "telehealth", Expr: `telehealth`, Weight: 3},
			{Trigger: "medical record", Expr: `medical record`, Weight: 3},
			{Trigger: "physician", Expr: `physician`, Weight: 2},
			{Trigger: "patient", Expr: `patient`, Weight: 2},
			{Trigger: "healthcare", Expr: `healthcare`, Weight: 2},
			{Trigger: "health data", Expr: `health data`, Weight: 2},
			{Trigger: "diagnos", Expr: `diagnos`, Weight: 1},
			{Trigger: "treatment", Expr: `treatment`, Weight: 1},
		}},
		{Type: domain.DocTypeFinancialAdv, Patterns: []ClassificationPattern{
			{Trigger: "wealth", Expr: `wealth management`, Weight: 3},
			{Trigger: "suitability", Expr: `suitability`, Weight: 3},
			{Trigger: "financial advice", Expr: `financial advice`, Weight: 3},
			{Trigger: "asset", Expr: `asset management`, Weight: 2},
			{Trigger: "fee", Expr: `fee.based`, Weight: 2},
			{Trigger: "advisor", Expr: `\badvisor\b`, Weight: 2},
			{Trigger: "commission", Expr: `\bcommission\b`, Weight: 1},
		}},
		{Type: domain.DocTypePrivacyPolicy, Patterns: []ClassificationPattern{
			{Trigger: "gdpr", Expr: `\bgdpr\b`, Weight: 3},
			{Trigger: "ccpa", Expr: `\bccpa\b`, Weight: 3},
			{Trigger: "data controller", Expr: `data controller`, Weight: 3},
			{Trigger: "data subject", Expr: `data subject`, Weight: 3},
			{Trigger: "erasure", Expr: `right to erasure`, Weight: 3},
			{Trigger: "personal data", Expr: `personal data`, Weight: 2},
			{Trigger: "data retention", Expr: `data retention`, Weight: 2},
			{Trigger: "cookie", Expr: `\bcookie\b`, Weight: 1},
		}},
		{Type: domain.DocTypeSocialMedia, Patterns: []ClassificationPattern{
			{Trigger: "moderation", Expr: `content moderation`, Weight: 3},
			{Trigger: "community", Expr: `community guideline`, Weight: 3},
			{Trigger: "hashtag", Expr: `\bhashtag\b`, Weight: 3},
			{Trigger: "followers", Expr: `followers`, Weight: 2},
			{Trigger: "feed", Expr: `\bfeed\b`, Weight: 1},
			{Trigger: "post", Expr: `\bpost\b`, Weight: 1},
			{Trigger: "profile", Expr: `\bprofile\b`, Weight: 1},
		}},
		{Type: domain.DocTypeWebsiteTerms, Patterns: []ClassificationPattern{
			{Trigger: "terms of", Expr: `terms of (use|service)`, Weight: 2},
			{Trigger: "acceptable use", Expr: `acceptable use`, Weight: 2},
			{Trigger: "user account", Expr: `user account`, Weight: 2},
			{Trigger: "hyperlink", Expr: `hyperlink`, Weight: 2},
			{Trigger: "web content", Expr: `web content`, Weight: 2},
			{Trigger: "website", Expr: `\bwebsite\b`, Weight: 1},
			{Trigger: "site", Expr: `\bsite\b`, Weight: 1},
		}},
	}
}

func summaryTemplates() map[domain.DocumentType]string {
	return map[domain.DocumentType]string{
		domain.DocTypeInsurance:     "This is an insurance policy outlining coverage terms, exclusions, premiums, and claim procedures. It defines your rights as a policyholder and what events or losses are covered.",
		domain.DocTypeLoan:          "This is a loan or credit agreement governing borrowed funds, repayment schedules, interest rates, and consequences of default.",
		domain.DocTypeMortgage:      "This is a mortgage agreement securing a loan against real property. It covers repayment terms, interest, and default consequences including foreclosure rights.",
		domain.DocTypeInvestment:    "This is an investment or securities agreement covering risk disclosures, fees, fiduciary obligations, and the management of your assets or portfolio.",
		domain.DocTypeLease:         "This is a lease or rental agreement outlining tenancy terms, rent obligations, maintenance responsibilities, and conditions for eviction.",
		domain.DocTypeEmployment:    "This is an employment agreement covering compensation, confidentiality, intellectual property, non-compete obligations, and termination conditions.",
		domain.DocTypeSaaS:          "This is a software or SaaS subscription agreement governing usage rights, billing, and the provider's ability to modify or terminate the service.",
		domain.DocTypeMobileApp:     "These are Terms of Service for a mobile application covering acceptable use, in-app purchases, data handling, and your rights as a user.",
		domain.DocTypeCloud:         "This is a cloud services agreement covering infrastructure access, uptime guarantees (SLAs), data ownership, and service availability.",
		domain.DocTypeOpenSource:    "This is an open-source license governing how the software can be used, modified, and redistributed.",
		domain.DocTypeECommerce:     "This is an e-commerce agreement covering purchases, returns, refunds, and seller/buyer obligations on the platform.",
		domain.DocTypeSubscription:  "This is a subscription agreement governing recurring billing, plan features, upgrade/downgrade rights, and cancellation.",
		domain.DocTypeStreaming:     "This is a streaming or media service agreement covering content access, billing, simultaneous streams, and usage restrictions.",
		domain.DocTypeTravel:        "This is a travel or hospitality agreement covering bookings, cancellations, refunds, passenger obligations, and liability for travel disruptions.",
		domain.DocTypeTelecom:       "This is a telecommunications agreement covering your mobile or broadband plan, data limits, roaming charges, and network usage policies.",
		domain.DocTypeHealthcare:    "This is a healthcare or medical services agreement covering patient rights, data privacy (HIPAA), treatment consent, and billing.",
		domain.DocTypeFinancialAdv:  "This is a financial advisory agreement covering the scope of advice, fee structures, fiduciary duty, conflicts of interest, and liability.",
		domain.DocTypePrivacyPolicy: "This is a Privacy Policy describing what personal data is collected, how it is used, who it is shared with, and your rights regarding that data.",
		domain.DocTypeSocialMedia:   "These are Terms of Service for a social media platform covering content rights, community standards, data use, and account management.",
		domain.DocTypeWebsiteTerms:  "These are Website Terms of Use governing how you may access and interact with the site, including user accounts, content, and liability.",
		domain.DocTypeGeneral:       "This is a general Terms & Conditions document outlining the rules, rights, and obligations between you and the provider.",
	}
}
