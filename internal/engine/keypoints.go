package engine

import (
	"fmt"
	"regexp"

	"github.com/clauseguard-server/internal/domain"
)

// detectorFunc inspects the document and emits at most one key point for
// its category, or nil when the category is absent. Detectors never fail;
// absence is not an error. maxEv bounds the evidence sentences collected.
type detectorFunc func(d *document, maxEv int) *domain.KeyPoint

// universalDetectors run for every document regardless of its resolved
// type, including the general fallback.
var universalDetectors = []detectorFunc{
	detectPayment,
	detectCancellation,
	detectPrivacy,
	detectLiability,
	detectDisputes,
	detectTermination,
	detectTermsChanges,
	detectGoverningLaw,
	detectForceMajeure,
	detectAgeRestriction,
}

// typeDetectors adds category-specific detectors per document type. Types
// without an entry get the universal set only.
var typeDetectors = map[domain.DocumentType][]detectorFunc{
	domain.DocTypeInsurance:     {detectRenewal},
	domain.DocTypeMortgage:      {detectLoanDefault},
	domain.DocTypeLoan:          {detectLoanDefault},
	domain.DocTypeLease:         {detectDeposit},
	domain.DocTypeEmployment:    {detectNonCompete, detectIP},
	domain.DocTypeSaaS:          {detectRenewal, detectRefund, detectSLA, detectIP},
	domain.DocTypeMobileApp:     {detectRenewal, detectRefund, detectCookies, detectIP},
	domain.DocTypeCloud:         {detectSLA, detectRenewal},
	domain.DocTypeOpenSource:    {detectIP},
	domain.DocTypeECommerce:     {detectRefund, detectRenewal, detectCookies},
	domain.DocTypeSubscription:  {detectRenewal, detectRefund},
	domain.DocTypeStreaming:     {detectRenewal, detectRefund, detectCookies, detectIP},
	domain.DocTypeTravel:        {detectRefund},
	domain.DocTypeTelecom:       {detectNetwork, detectRenewal},
	domain.DocTypeHealthcare:    {detectHealthData},
	domain.DocTypePrivacyPolicy: {detectCookies, detectHealthData},
	domain.DocTypeSocialMedia:   {detectIP, detectCookies},
	domain.DocTypeWebsiteTerms:  {detectCookies, detectIP},
}

// extractKeyPoints runs the universal detectors plus the ones registered
// for the resolved type, keeps at most one key point per category, and
// orders the output by the fixed category priority rather than match
// position, so reports render consistently.
func (e *Engine) extractKeyPoints(doc *document, docType domain.DocumentType) []domain.KeyPoint {
	maxEv := e.cfg.MaxEvidencePerFinding
	if maxEv <= 0 {
		maxEv = 2
	}

	byCategory := make(map[domain.KeyPointCategory]domain.KeyPoint)
	run := func(detectors []detectorFunc) {
		for _, detect := range detectors {
			kp := detect(doc, maxEv)
			if kp == nil {
				continue
			}
			if _, ok := byCategory[kp.Category]; ok {
				continue
			}
			byCategory[kp.Category] = *kp
		}
	}
	run(universalDetectors)
	run(typeDetectors[docType])

	out := []domain.KeyPoint{}
	for _, cat := range domain.KeyPointCategoryOrder {
		if kp, ok := byCategory[cat]; ok {
			out = append(out, kp)
		}
	}
	return out
}

var (
	rePayment     = []*regexp.Regexp{rx(`payment`), rx(`billing`), rx(`charge`), rx(`\bfee\b`), rx(`price`)}
	reAutoCharge  = rx(`automat\w+ (charge|bill|renew)`)
	rePriceChange = []*regexp.Regexp{rx(`price.*change`), rx(`adjust.*price`), rx(`modify.*fee`)}
	reLateFee     = []*regexp.Regexp{rx(`late.*fee`), rx(`penalty.*payment`)}
	rePaymentEv   = []*regexp.Regexp{rx(`payment`), rx(`billing`), rx(`charge`), rx(`\bfee\b`)}
)

func detectPayment(d *document, maxEv int) *domain.KeyPoint {
	if !d.has(rePayment...) {
		return nil
	}
	watch := false
	detail := "Document includes payment or billing terms."
	switch {
	case d.has(reAutoCharge):
		detail, watch = "Payments may be charged automatically.", true
	case d.has(rePriceChange...):
		detail, watch = "Prices can change; check for notice requirements.", true
	case d.has(reLateFee...):
		detail, watch = "Late payment fees or penalties may apply.", true
	}
	return &domain.KeyPoint{
		Category: domain.CategoryPayment,
		Icon:     "💳",
		Title:    "Payment Terms",
		Detail:   detail,
		WatchOut: watch,
		Evidence: d.findEvidence(maxEv, rePaymentEv...),
	}
}

var reRenewal = []*regexp.Regexp{rx(`auto.?renew`), rx(`automatically renew`), rx(`renew\w*[^.!?\n]{0,40}subscription`)}

func detectRenewal(d *document, maxEv int) *domain.KeyPoint {
	if !d.has(reRenewal...) {
		return nil
	}
	return &domain.KeyPoint{
		Category: domain.CategoryAutoRenewal,
		Icon:     "🔄",
		Title:    "Automatic Renewal",
		Detail:   "Your subscription may renew automatically. Check how far in advance you must cancel.",
		WatchOut: true,
		Evidence: d.findEvidence(maxEv, reRenewal[0], reRenewal[1]),
	}
}

var (
	reCancel       = []*regexp.Regexp{rx(`cancel`), rx(`terminat`), rx(`end.*subscription`)}
	reNoRefund     = []*regexp.Regexp{rx(`no refund`), rx(`non.refundable`)}
	reCancelAny    = []*regexp.Regexp{rx(`cancel.*any time`), rx(`anytime`)}
	reCancelNotice = []*regexp.Regexp{rx(`notice.*cancel`), rx(`cancel.*notice`)}
	reCancelEv     = []*regexp.Regexp{rx(`cancel\w*`), rx(`terminat\w*`)}
)

func detectCancellation(d *document, maxEv int) *domain.KeyPoint {
	if !d.has(reCancel...) {
		return nil
	}
	watch := false
	var detail string
	switch {
	case d.has(reNoRefund...):
		detail, watch = "Cancellations may not entitle you to a refund.", true
	case d.has(reCancelAny...):
		detail = "You can cancel at any time, but verify whether unused periods are refunded."
	case d.has(reCancelNotice...):
		detail, watch = "A notice period may be required before cancellation takes effect.", true
	default:
		detail = "Cancellation terms are defined in this document."
	}
	return &domain.KeyPoint{
		Category: domain.CategoryCancellation,
		Icon:     "❌",
		Title:    "Cancellation Policy",
		Detail:   detail,
		WatchOut: watch,
		Evidence: d.findEvidence(maxEv, reCancelEv...),
	}
}

var (
	reRefund     = []*regexp.Regexp{rx(`refund`), rx(`money.back`), rx(`chargeback`)}
	reAllFinal   = []*regexp.Regexp{rx(`no refund`), rx(`non.refundable`), rx(`all sales final`)}
	reRefundDays = rx(`(\d+).day`)
	reRefundEv   = []*regexp.Regexp{rx(`refund`), rx(`money.back`)}
)

func detectRefund(d *document, maxEv int) *domain.KeyPoint {
	if !d.has(reRefund...) {
		return nil
	}
	evidence := d.findEvidence(maxEv, reRefundEv...)
	if d.has(reAllFinal...) {
		return &domain.KeyPoint{
			Category: domain.CategoryRefunds,
			Icon:     "💰",
			Title:    "Refund Policy",
			Detail:   "No refunds are available; all purchases are final.",
			WatchOut: true,
			Evidence: evidence,
		}
	}
	detail := "Refund terms are addressed."
	var fields map[string]string
	if m := reRefundDays.FindStringSubmatch(d.raw); m != nil {
		detail = fmt.Sprintf("A %s-day refund window is offered; verify the conditions.", m[1])
		fields = map[string]string{"refund_window_days": m[1]}
	}
	return &domain.KeyPoint{
		Category: domain.CategoryRefunds,
		Icon:     "💰",
		Title:    "Refund Policy",
		Detail:   detail,
		Evidence: evidence,
		Fields:   fields,
	}
}

var (
	rePrivacy    = []*regexp.Regexp{rx(`personal (data|information)`), rx(`privacy`), rx(`collect.*data`)}
	reSellData   = []*regexp.Regexp{rx(`sell.*data`), rx(`third.party.*sell`)}
	reShareThird = []*regexp.Regexp{rx(`share.*third.part`), rx(`third.part.*share`)}
	reCompliance = []*regexp.Regexp{rx(`gdpr`), rx(`ccpa`)}
	rePrivacyEv  = []*regexp.Regexp{rx(`personal (data|information)`), rx(`collect.*data`), rx(`share.*data`)}
)

func detectPrivacy(d *document, maxEv int) *domain.KeyPoint {
	if !d.has(rePrivacy...) {
		return nil
	}
	evidence := d.findEvidence(maxEv, rePrivacyEv...)
	kp := &domain.KeyPoint{
		Category: domain.CategoryPrivacy,
		Icon:     "🔒",
		Title:    "Data & Privacy",
		Evidence: evidence,
	}
	switch {
	case d.has(reSellData...):
		kp.Detail, kp.WatchOut = "Your personal data may be sold to third parties.", true
	case d.has(reShareThird...):
		kp.Detail, kp.WatchOut = "Your data may be shared with third parties; check which ones and why.", true
	case d.has(reCompliance...):
		kp.Detail = "GDPR/CCPA-compliant data handling is referenced."
	default:
		kp.Detail = "The document describes how your personal data is handled."
	}
	return kp
}

var (
	reCookies      = []*regexp.Regexp{rx(`cookie`), rx(`tracking`), rx(`web beacon`), rx(`\bpixel\b`)}
	reThirdCookies = []*regexp.Regexp{rx(`third.party.*cookie`), rx(`advertis\w*[^.!?\n]{0,40}cookie`)}
	reCookiesEv    = []*regexp.Regexp{rx(`cookie`), rx(`tracking`), rx(`web beacon`)}
)

func detectCookies(d *document, maxEv int) *domain.KeyPoint {
	if !d.has(reCookies...) {
		return nil
	}
	watch := d.has(reThirdCookies...)
	detail := "Cookies and tracking technologies are used."
	if watch {
		detail = "Third-party and advertising cookies may be placed on your device."
	}
	return &domain.KeyPoint{
		Category: domain.CategoryCookies,
		Icon:     "🍪",
		Title:    "Cookies & Tracking",
		Detail:   detail,
		WatchOut: watch,
		Evidence: d.findEvidence(maxEv, reCookiesEv...),
	}
}

var (
	reLiability   = []*regexp.Regexp{rx(`liability`), rx(`liable`), rx(`indemnif`)}
	reUnlimited   = rx(`unlimited liability`)
	reLimitation  = []*regexp.Regexp{rx(`limitation of liability`), rx(`not liable`)}
	reIndemnify   = rx(`indemnif`)
	reLiabilityEv = []*regexp.Regexp{rx(`liabilit`), rx(`indemnif`)}
)

func detectLiability(d *document, maxEv int) *domain.KeyPoint {
	if !d.has(reLiability...) {
		return nil
	}
	watch := false
	var detail string
	switch {
	case d.has(reUnlimited):
		detail, watch = "You may be exposed to unlimited financial liability.", true
	case d.has(reLimitation...):
		detail, watch = "The provider limits its own liability; you may have limited recourse for damages.", true
	default:
		detail = "The document includes liability clauses."
	}
	if d.has(reIndemnify) {
		detail += " You may be required to indemnify the provider against third-party claims."
		watch = true
	}
	return &domain.KeyPoint{
		Category: domain.CategoryLiability,
		Icon:     "⚠️",
		Title:    "Liability & Indemnification",
		Detail:   detail,
		WatchOut: watch,
		Evidence: d.findEvidence(maxEv, reLiabilityEv...),
	}
}

var (
	reDisputes    = []*regexp.Regexp{rx(`arbitrat`), rx(`class action`), rx(`dispute resolution`), rx(`jurisdiction`)}
	reMandArb     = rx(`(binding|mandatory)\s+arbitration|arbitration\s+(is|shall be)\s+(binding|mandatory|required)`)
	reClassWaiver = rx(`class action waiver`)
	reDisputesEv  = []*regexp.Regexp{rx(`arbitrat`), rx(`class action`), rx(`dispute`)}
)

func detectDisputes(d *document, maxEv int) *domain.KeyPoint {
	if !d.has(reDisputes...) {
		return nil
	}
	watch := false
	detail := "Dispute resolution procedures are outlined."
	if d.has(reMandArb) {
		detail, watch = "You must use binding arbitration to resolve disputes; you may not sue in court.", true
	}
	if d.has(reClassWaiver) {
		detail += " Class action lawsuits are waived."
		watch = true
	}
	return &domain.KeyPoint{
		Category: domain.CategoryDisputes,
		Icon:     "⚖️",
		Title:    "Disputes & Arbitration",
		Detail:   detail,
		WatchOut: watch,
		Evidence: d.findEvidence(maxEv, reDisputesEv...),
	}
}

var (
	reIP      = []*regexp.Regexp{rx(`intellectual property`), rx(`copyright`), rx(`trademark`), rx(`content.*license`), rx(`user.generated`)}
	reBroadIP = []*regexp.Regexp{rx(`grant.*license.*content`), rx(`royalty.free`), rx(`perpetual.*license`)}
	reIPEv    = []*regexp.Regexp{rx(`intellectual property`), rx(`copyright`), rx(`license.*content`)}
)

func detectIP(d *document, maxEv int) *domain.KeyPoint {
	if !d.has(reIP...) {
		return nil
	}
	watch := d.has(reBroadIP...)
	detail := "Intellectual property ownership is addressed."
	if watch {
		detail = "You grant the platform a broad license to use your content."
	}
	return &domain.KeyPoint{
		Category: domain.CategoryIP,
		Icon:     "©️",
		Title:    "Content & IP Rights",
		Detail:   detail,
		WatchOut: watch,
		Evidence: d.findEvidence(maxEv, reIPEv...),
	}
}

var (
	reTermination   = []*regexp.Regexp{rx(`terminat.*account`), rx(`suspend.*account`), rx(`sole.*discretion`)}
	reWithoutNotice = rx(`without (prior )?notice`)
	reTerminat      = rx(`terminat`)
)

func detectTermination(d *document, maxEv int) *domain.KeyPoint {
	if !d.has(reTermination...) {
		return nil
	}
	watch := false
	detail := "The provider can terminate or suspend accounts under defined conditions."
	if d.has(reWithoutNotice) && d.has(reTerminat) {
		detail, watch = "Your account may be terminated without prior notice at their discretion.", true
	}
	return &domain.KeyPoint{
		Category: domain.CategoryTermination,
		Icon:     "🚫",
		Title:    "Account Suspension / Termination",
		Detail:   detail,
		WatchOut: watch,
		Evidence: d.findEvidence(maxEv, reTermination...),
	}
}

var (
	reChanges      = []*regexp.Regexp{rx(`modif.*terms`), rx(`change.*terms`), rx(`amend.*agreement`), rx(`update.*terms`), rx(`unilateral(ly)?.*modif`)}
	reChangesWatch = []*regexp.Regexp{rx(`without.*notice`), rx(`at any time.*modif`), rx(`unilateral`)}
	reChangesEv    = []*regexp.Regexp{rx(`modif.*terms`), rx(`change.*terms`), rx(`amend.*agreement`), rx(`unilateral(ly)?.*modif`)}
)

func detectTermsChanges(d *document, maxEv int) *domain.KeyPoint {
	if !d.has(reChanges...) {
		return nil
	}
	watch := d.has(reChangesWatch...)
	detail := "The provider can update these terms over time."
	if watch {
		detail = "Terms can be changed at any time without notice; continued use implies acceptance."
	}
	return &domain.KeyPoint{
		Category: domain.CategoryTermsChanges,
		Icon:     "📝",
		Title:    "Right to Modify Terms",
		Detail:   detail,
		WatchOut: watch,
		Evidence: d.findEvidence(maxEv, reChangesEv...),
	}
}

var (
	reGovLaw = []*regexp.Regexp{rx(`governing law`), rx(`jurisdiction`), rx(`laws of the state`)}
	// Case-sensitive: extracts a capitalized jurisdiction name.
	reJurisdiction = regexp.MustCompile(`laws? of (the )?([A-Z][a-z]+(?:\s[A-Z][a-z]+)?)`)
	reGovLawEv     = []*regexp.Regexp{rx(`governing law`), rx(`jurisdiction`)}
)

func detectGoverningLaw(d *document, maxEv int) *domain.KeyPoint {
	if !d.has(reGovLaw...) {
		return nil
	}
	jurisdiction := "a specific jurisdiction"
	var fields map[string]string
	if m := reJurisdiction.FindStringSubmatch(d.raw); m != nil {
		jurisdiction = m[2]
		fields = map[string]string{"jurisdiction": m[2]}
	}
	return &domain.KeyPoint{
		Category: domain.CategoryGoverningLaw,
		Icon:     "🏛️",
		Title:    "Applicable Law & Jurisdiction",
		Detail:   fmt.Sprintf("This agreement is governed by the laws of %s. Disputes may need to be resolved there.", jurisdiction),
		Evidence: d.findEvidence(maxEv, reGovLawEv...),
		Fields:   fields,
	}
}

var (
	reNonCompete    = []*regexp.Regexp{rx(`non.compete`), rx(`non.solicit`), rx(`restraint of trade`)}
	reRestrictionTm = rx(`(\d+)\s*(month|year)`)
)

func detectNonCompete(d *document, maxEv int) *domain.KeyPoint {
	if !d.has(reNonCompete...) {
		return nil
	}
	detail := "A non-compete or non-solicitation clause is present; you may be restricted from working for competitors."
	var fields map[string]string
	if m := reRestrictionTm.FindStringSubmatch(d.raw); m != nil {
		detail += fmt.Sprintf(" The restriction period appears to be %s %s(s).", m[1], m[2])
		fields = map[string]string{"restriction_period": m[1] + " " + m[2]}
	}
	return &domain.KeyPoint{
		Category: domain.CategoryNonCompete,
		Icon:     "🚷",
		Title:    "Non-Compete Clause",
		Detail:   detail,
		WatchOut: true,
		Evidence: d.findEvidence(maxEv, reNonCompete...),
		Fields:   fields,
	}
}

var (
	reDefault   = []*regexp.Regexp{rx(`\bdefault\b`), rx(`acceleration`), rx(`foreclosure`), rx(`repossess`)}
	reDefaultEv = []*regexp.Regexp{rx(`\bdefault\b`), rx(`foreclosure`), rx(`repossess`), rx(`acceleration`)}
)

func detectLoanDefault(d *document, maxEv int) *domain.KeyPoint {
	if !d.has(reDefault...) {
		return nil
	}
	return &domain.KeyPoint{
		Category: domain.CategoryLoanDefault,
		Icon:     "💥",
		Title:    "Default Provisions",
		Detail:   "The document outlines consequences for default; this may include acceleration of full repayment, asset seizure, or foreclosure.",
		WatchOut: true,
		Evidence: d.findEvidence(maxEv, reDefaultEv...),
	}
}

var (
	reHealth      = []*regexp.Regexp{rx(`hipaa`), rx(`health.*data`), rx(`medical.*record`), rx(`protected health`), rx(`\bphi\b`)}
	reHealthShare = []*regexp.Regexp{rx(`share.*health`), rx(`disclose.*health`), rx(`third.*health`)}
	reHealthEv    = []*regexp.Regexp{rx(`hipaa`), rx(`health.*data`), rx(`medical.*record`)}
)

func detectHealthData(d *document, maxEv int) *domain.KeyPoint {
	if !d.has(reHealth...) {
		return nil
	}
	watch := d.has(reHealthShare...)
	detail := "Health data is involved. HIPAA or equivalent protections may apply."
	if watch {
		detail = "Your health data may be shared with third parties; verify scope and purpose."
	}
	return &domain.KeyPoint{
		Category: domain.CategoryHealthData,
		Icon:     "🏥",
		Title:    "Health & Medical Data",
		Detail:   detail,
		WatchOut: watch,
		Evidence: d.findEvidence(maxEv, reHealthEv...),
	}
}

var (
	reNetwork   = []*regexp.Regexp{rx(`roaming`), rx(`data cap`), rx(`fair use`), rx(`throttl`), rx(`network management`)}
	reThrottle  = []*regexp.Regexp{rx(`throttl`), rx(`speed.*reduc`)}
	reRoaming   = rx(`roaming`)
	reNetworkEv = []*regexp.Regexp{rx(`roaming`), rx(`throttl`), rx(`data cap`)}
)

func detectNetwork(d *document, maxEv int) *domain.KeyPoint {
	if !d.has(reNetwork...) {
		return nil
	}
	watch := false
	detail := "Network usage policies are defined."
	if d.has(reThrottle...) {
		detail, watch = "Your data speeds may be throttled after exceeding a usage threshold.", true
	}
	if d.has(reRoaming) {
		detail += " Roaming charges may apply outside your home network."
		watch = true
	}
	return &domain.KeyPoint{
		Category: domain.CategoryNetwork,
		Icon:     "📡",
		Title:    "Data Limits & Roaming",
		Detail:   detail,
		WatchOut: watch,
		Evidence: d.findEvidence(maxEv, reNetworkEv...),
	}
}

var (
	reDeposit   = []*regexp.Regexp{rx(`security deposit`), rx(`\bbond\b`), rx(`damage.*deposit`)}
	reDepositEv = []*regexp.Regexp{rx(`security deposit`), rx(`\bbond\b`), rx(`deposit`)}
)

func detectDeposit(d *document, maxEv int) *domain.KeyPoint {
	if !d.has(reDeposit...) {
		return nil
	}
	return &domain.KeyPoint{
		Category: domain.CategoryDeposit,
		Icon:     "🏦",
		Title:    "Security Deposit",
		Detail:   "A security deposit is required. Review the conditions under which it can be withheld or deducted.",
		WatchOut: true,
		Evidence: d.findEvidence(maxEv, reDepositEv...),
	}
}

var reForceMajeure = []*regexp.Regexp{rx(`force majeure`), rx(`act of god`), rx(`beyond.*control`), rx(`unforeseeable`)}

func detectForceMajeure(d *document, maxEv int) *domain.KeyPoint {
	if !d.has(reForceMajeure...) {
		return nil
	}
	return &domain.KeyPoint{
		Category: domain.CategoryForceMajeure,
		Icon:     "🌪️",
		Title:    "Force Majeure",
		Detail:   "A force majeure clause limits the provider's obligations during extraordinary events (natural disasters, pandemics, etc.).",
		Evidence: d.findEvidence(maxEv, reForceMajeure[0], reForceMajeure[1], reForceMajeure[2]),
	}
}

var (
	reSLA        = []*regexp.Regexp{rx(`\bsla\b`), rx(`service level`), rx(`uptime`), rx(`availability.*%`), rx(`downtime`)}
	reUptimePct  = rx(`(\d{2,3}(?:\.\d+)?)\s*%`)
	reSLACredits = []*regexp.Regexp{rx(`no credit`), rx(`sole remedy.*credit`), rx(`not liable.*downtime`)}
	reSLAEv      = []*regexp.Regexp{rx(`uptime`), rx(`service level`), rx(`downtime`)}
)

func detectSLA(d *document, maxEv int) *domain.KeyPoint {
	if !d.has(reSLA...) {
		return nil
	}
	uptime := "a defined"
	var fields map[string]string
	if m := reUptimePct.FindStringSubmatch(d.raw); m != nil {
		uptime = m[1] + "%"
		fields = map[string]string{"uptime_guarantee": m[1] + "%"}
	}
	watch := d.has(reSLACredits...)
	detail := fmt.Sprintf("An SLA guarantees %s uptime.", uptime)
	if watch {
		detail += " However, compensation for downtime may be limited to service credits only."
	}
	return &domain.KeyPoint{
		Category: domain.CategorySLA,
		Icon:     "📊",
		Title:    "Uptime & SLA Guarantee",
		Detail:   detail,
		WatchOut: watch,
		Evidence: d.findEvidence(maxEv, reSLAEv...),
		Fields:   fields,
	}
}

var (
	reAge      = []*regexp.Regexp{rx(`\d+\s*years? of age`), rx(`must be\s*\d+`), rx(`age.*requirement`), rx(`minors?`)}
	reAgeValue = rx(`(\d+)\s*years? of age|must be (\d+)`)
	reAgeEv    = []*regexp.Regexp{rx(`years? of age`), rx(`must be \d+`), rx(`minor`)}
)

func detectAgeRestriction(d *document, maxEv int) *domain.KeyPoint {
	if !d.has(reAge...) {
		return nil
	}
	age := "a minimum"
	var fields map[string]string
	if m := reAgeValue.FindStringSubmatch(d.raw); m != nil {
		v := m[1]
		if v == "" {
			v = m[2]
		}
		if v != "" {
			age = v
			fields = map[string]string{"minimum_age": v}
		}
	}
	return &domain.KeyPoint{
		Category: domain.CategoryAge,
		Icon:     "🔞",
		Title:    "Age Requirement",
		Detail:   fmt.Sprintf("Users must be at least %s years old. Parental consent may be required for minors.", age),
		Evidence: d.findEvidence(maxEv, reAgeEv...),
		Fields:   fields,
	}
}
