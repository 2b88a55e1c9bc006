package content

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// incomeRequirements maps each ITR form to its primary income requirement
// line in the income_requirements renderer.
var incomeRequirements = map[string]string{
	"ITR-1": "Salary income details from Form-16",
	"ITR-2": "Salary + Capital gains/House property details",
	"ITR-3": "Business/Professional income with books of accounts",
	"ITR-4": "Business/Professional turnover for presumptive taxation",
}

// NewITRProvider builds the registry backing the income tax filing dialogue:
// every static text plus the renderers that interpolate user data.
func NewITRProvider() *Registry {
	r := NewRegistry()
	for key, text := range staticTexts {
		r.RegisterStatic(key, text)
	}

	r.Register("pan_recorded", func(data map[string]string) (string, error) {
		p := profileFrom(data)
		return fmt.Sprintf("PAN %s recorded. What's your residential status for tax purposes?", p.PAN), nil
	})

	r.Register("tds_verification_question", func(data map[string]string) (string, error) {
		p := profileFrom(data)
		return fmt.Sprintf("Let's input your income for %s. First, let's verify your TDS and advance tax payments. Do you have your Form-16 and TDS certificates ready?", p.Form()), nil
	})

	r.Register("income_details_prompt", func(data map[string]string) (string, error) {
		p := profileFrom(data)
		return fmt.Sprintf("Ready to input income details for %s? Let's start with your primary income source:", p.Form()), nil
	})

	r.Register("income_requirements", func(data map[string]string) (string, error) {
		p := profileFrom(data)
		req, ok := incomeRequirements[p.Form()]
		if !ok {
			req = "Income details as per ITR form"
		}
		return fmt.Sprintf(`**Income Details Required for %s:**

**Primary Requirement:**
%s

**Supporting Documents:**
- Form-16 (for salary)
- Bank statements
- Investment statements
- Expense receipts
- Capital gains computation

**Preparation Time:** 30-60 minutes

Ready to input your income details?`, p.Form(), req), nil
	})

	r.Register("filing_summary", func(data map[string]string) (string, error) {
		p := profileFrom(data)
		filer := p.FilerType
		if filer == "" {
			filer = "individual"
		}
		regime := p.TaxRegime
		if regime == "" {
			regime = "selected"
		}
		return fmt.Sprintf(`**Filing Summary - Please Review:**

**ITR Details:**
- Form Type: %s
- Filer Type: %s
- Tax Regime: %s
- Assessment Year: 2025-26

**Income Sources:** As declared
**Deductions:** As applicable under chosen regime
**Tax Status:** Calculated based on inputs

**Next Steps:**
1. Final submission
2. Download ITR-V
3. E-verification
4. Track status

**Important:** Review all details carefully before submission.
Once submitted, amendments require separate process.

Does everything look correct?`, p.Form(), titleCase(filer), titleCase(regime)), nil
	})

	r.Register("completion", func(data map[string]string) (string, error) {
		p := profileFrom(data)
		verify := p.VerifyMethod
		if verify == "" {
			verify = "chosen method"
		}
		return fmt.Sprintf(`**Congratulations! ITR Filing Completed Successfully!**

**Summary:**
- Form: %s
- E-verified via %s
- Filing Date: %s

**What's Next:**
- Save confirmation email
- Track refund status online
- Keep ITR-V for records
- Next filing: March 2027

**Important Deadlines:**
- Amendment: Before March end
- Refund: Usually within 45 days

Thank you for using ITR Filing Assistant!
Your taxes are now successfully filed and verified.`, p.Form(), verify, time.Now().Format("2006-01-02")), nil
	})

	return r
}

// titleCase uppercases the first letter of each space separated word.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		runes := []rune(w)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
