// Package domain contains the core business entities for rule-based
// terms & conditions analysis: document categories, risk levels, findings
// and the immutable analysis report returned to every caller.
package domain

import "errors"

// DocumentType is one of the fixed legal-document categories the analyzer
// recognizes. The zero value is not valid; unclassifiable documents map to
// DocTypeGeneral.
type DocumentType string

const (
	DocTypeInsurance     DocumentType = "Insurance Policy"
	DocTypeMortgage      DocumentType = "Mortgage Agreement"
	DocTypeLoan          DocumentType = "Loan / Credit Agreement"
	DocTypeInvestment    DocumentType = "Investment / Securities"
	DocTypeLease         DocumentType = "Lease / Rental Agreement"
	DocTypeEmployment    DocumentType = "Employment Contract"
	DocTypeSaaS          DocumentType = "SaaS / Software License"
	DocTypeMobileApp     DocumentType = "Mobile App Terms"
	DocTypeCloud         DocumentType = "Cloud Services Agreement"
	DocTypeOpenSource    DocumentType = "Open Source License"
	DocTypeECommerce     DocumentType = "E-Commerce / Shopping"
	DocTypeSubscription  DocumentType = "Subscription Service"
	DocTypeStreaming     DocumentType = "Streaming / Media"
	DocTypeTravel        DocumentType = "Travel & Hospitality"
	DocTypeTelecom       DocumentType = "Telecommunications"
	DocTypeHealthcare    DocumentType = "Healthcare / Medical"
	DocTypeFinancialAdv  DocumentType = "Financial Advisory"
	DocTypePrivacyPolicy DocumentType = "Privacy Policy"
	DocTypeSocialMedia   DocumentType = "Social Media Platform"
	DocTypeWebsiteTerms  DocumentType = "Website Terms of Use"

	// DocTypeGeneral is the fallback for documents that score below the
	// classification confidence threshold.
	DocTypeGeneral DocumentType = "General Terms & Conditions"
)

// AllDocumentTypes lists every recognized category in classification
// priority order: more specific categories come before generic ones so
// that score ties break deterministically toward the specific type.
var AllDocumentTypes = []DocumentType{
	DocTypeInsurance,
	DocTypeMortgage,
	DocTypeLoan,
	DocTypeInvestment,
	DocTypeLease,
	DocTypeEmployment,
	DocTypeSaaS,
	DocTypeMobileApp,
	DocTypeCloud,
	DocTypeOpenSource,
	DocTypeECommerce,
	DocTypeSubscription,
	DocTypeStreaming,
	DocTypeTravel,
	DocTypeTelecom,
	DocTypeHealthcare,
	DocTypeFinancialAdv,
	DocTypePrivacyPolicy,
	DocTypeSocialMedia,
	DocTypeWebsiteTerms,
	DocTypeGeneral,
}

// RiskLevel is the coarse label derived from the 0-100 risk score.
type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

// Severity is the tier assigned to a red flag pattern in the catalog.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// KeyPointCategory identifies the contractual concern a key point belongs to.
type KeyPointCategory string

const (
	CategoryPrivacy      KeyPointCategory = "Privacy & Data"
	CategoryDisputes     KeyPointCategory = "Dispute Resolution"
	CategoryTermination  KeyPointCategory = "Account Termination"
	CategoryAutoRenewal  KeyPointCategory = "Auto-Renewal"
	CategoryCancellation KeyPointCategory = "Cancellation"
	CategoryRefunds      KeyPointCategory = "Refunds"
	CategoryPayment      KeyPointCategory = "Payment & Billing"
	CategoryLiability    KeyPointCategory = "Liability"
	CategoryIP           KeyPointCategory = "Intellectual Property"
	CategoryTermsChanges KeyPointCategory = "Terms Changes"
	CategoryCookies      KeyPointCategory = "Cookies & Tracking"
	CategoryNonCompete   KeyPointCategory = "Non-Compete"
	CategoryHealthData   KeyPointCategory = "Health Data"
	CategoryLoanDefault  KeyPointCategory = "Default & Consequences"
	CategoryDeposit      KeyPointCategory = "Security Deposit"
	CategoryNetwork      KeyPointCategory = "Network & Roaming"
	CategorySLA          KeyPointCategory = "Service Level"
	CategoryForceMajeure KeyPointCategory = "Force Majeure"
	CategoryAge          KeyPointCategory = "Age Restriction"
	CategoryGoverningLaw KeyPointCategory = "Governing Law"
)

// KeyPointCategoryOrder fixes the rendering order of key points in a
// report. Extraction output follows this order, not match order in the
// text, so reports are stable across runs and comparable across documents.
var KeyPointCategoryOrder = []KeyPointCategory{
	CategoryPrivacy,
	CategoryDisputes,
	CategoryTermination,
	CategoryAutoRenewal,
	CategoryCancellation,
	CategoryRefunds,
	CategoryPayment,
	CategoryLiability,
	CategoryIP,
	CategoryTermsChanges,
	CategoryCookies,
	CategoryNonCompete,
	CategoryHealthData,
	CategoryLoanDefault,
	CategoryDeposit,
	CategoryNetwork,
	CategorySLA,
	CategoryForceMajeure,
	CategoryAge,
	CategoryGoverningLaw,
}

// Sentinel errors shared across the analysis services.
var (
	ErrNotFound      = errors.New("not found")
	ErrNoText        = errors.New("no text could be extracted")
	ErrTooFewDocs    = errors.New("at least two documents are required")
	ErrTooManyDocs   = errors.New("at most eight documents can be ranked")
	ErrInvalidConfig = errors.New("invalid configuration")
)

// IsValid reports whether the document type is one of the catalog categories.
func (dt DocumentType) IsValid() bool {
	for _, t := range AllDocumentTypes {
		if t == dt {
			return true
		}
	}
	return false
}

func (dt DocumentType) String() string { return string(dt) }

// IsValid reports whether the risk level is one of the defined labels.
func (rl RiskLevel) IsValid() bool {
	switch rl {
	case RiskLow, RiskMedium, RiskHigh:
		return true
	default:
		return false
	}
}

func (rl RiskLevel) String() string { return string(rl) }

// IsValid reports whether the severity is one of the catalog tiers.
func (s Severity) IsValid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh:
		return true
	default:
		return false
	}
}

func (s Severity) String() string { return string(s) }

// Rank maps a severity to a sortable weight, highest first.
func (s Severity) Rank() int {
	switch s {
	case SeverityHigh:
		return 3
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 1
	default:
		return 0
	}
}

// IsValid reports whether the category is one of the fixed key point categories.
func (c KeyPointCategory) IsValid() bool {
	for _, cat := range KeyPointCategoryOrder {
		if cat == c {
			return true
		}
	}
	return false
}

func (c KeyPointCategory) String() string { return string(c) }

// PriorityIndex returns the category's position in the fixed rendering
// order, or len(KeyPointCategoryOrder) for unknown categories.
func (c KeyPointCategory) PriorityIndex() int {
	for i, cat := range KeyPointCategoryOrder {
		if cat == c {
			return i
		}
	}
	return len(KeyPointCategoryOrder)
}
