package content

// staticTexts holds every fixed response in the filing dialogue, keyed by
// content key. Long-form guides are markdown; prompts are single sentences.
var staticTexts = map[string]string{
	// Global commands and fallback.
	"restart": "Let's start fresh! Are you ready to begin your ITR filing process?",
	"help": `I can help you with ITR filing! Here's what I can assist you with:

- **ITR Form Selection**: Find the right ITR form based on your income sources
- **Document Checklist**: Get a list of required documents
- **Tax Calculation**: Calculate your tax liability
- **Aadhaar Linking**: Guide you through PAN-Aadhaar linking
- **Filing Process**: Step-by-step filing assistance

Just tell me what you need help with!`,
	"fallback": "I didn't understand that. Let me help you with your ITR filing. What would you like to do?",

	// Entry.
	"welcome":      "Welcome to ITR Filing Assistant! I'll help you file your Income Tax Return step by step. Ready to start?",
	"begin_filing": "Great! Let's begin your ITR filing process. First, I need to verify - Is your Aadhaar linked with your PAN?",
	"itr_form_guide": `**ITR Form Selection Guide:**

- **ITR-1 (Sahaj)**: Salary, pension, one house property, other sources < Rs 50L
- **ITR-2**: Salary + capital gains/multiple house properties, income > Rs 50L
- **ITR-3**: Business/Professional income (regular taxation)
- **ITR-4 (Sugam)**: Business/Professional with presumptive taxation
- **ITR-5**: LLP, AOP, BOI, Trusts
- **ITR-6**: Companies
- **ITR-7**: Trusts, political parties

Which income sources do you have?`,

	// Aadhaar linking.
	"aadhaar_linked": "Perfect! Your Aadhaar is linked with PAN. Now, let me identify what type of filer you are. Are you an Individual taxpayer?",
	"aadhaar_linking_guide": `**Link Aadhaar with PAN:**

**Online Methods:**
- IT e-filing portal: incometax.gov.in
- SMS: Send to 567678 or 56161
- Direct link: eportal.incometax.gov.in/iec/foservices

**Required Information:**
- PAN Number
- Aadhaar Number
- Name (as per Aadhaar)

**Time Required:** Usually instant

Have you completed the linking process?`,
	"aadhaar_link_check": `You can check if your Aadhaar is linked with PAN by:

- **Online**: Visit the Income Tax e-filing portal
- **SMS**: Send SMS to 567678 or 56161
- **Call**: Contact IT helpdesk at 1800-103-0025

Is your Aadhaar linked with PAN?`,
	"aadhaar_link_prompt":     "I need to know about your Aadhaar-PAN linking status to proceed. Is your Aadhaar linked with your PAN?",
	"aadhaar_done_filer_type": "Excellent! Now that your Aadhaar is linked, let's proceed. What type of filer are you?",
	"aadhaar_skip_filer_type": "I recommend linking Aadhaar with PAN for smooth processing, but let's continue. What type of filer are you?",

	// Filer type.
	"filer_individual":   "Great! You're an individual taxpayer. Now let me understand your income sources better. What's your primary income source?",
	"filer_company":      "You're filing for a Company. You'll need to use ITR-6 form. Do you have all required company documents ready?",
	"filer_professional": "You're a Tax Professional. You can proceed with professional tools and ITR-6 form. Do you need access to professional features?",
	"filer_entity":       "You're filing for a Non-Company Entity (AOP, BOI, LLP, Trust). You'll need ITR-5 or ITR-7. What type of entity is this?",
	"filer_type_prompt":  "I need to identify your filer type to guide you to the right ITR form. Are you an Individual, Company, Tax Professional, or Other Entity?",
	"company_proceed":    "Company documents confirmed for ITR-6. Which tax regime applies to the company?",
	"itr6_documents": `**ITR-6 Document Checklist:**

- Audited financial statements (P&L, balance sheet)
- Tax audit report (if applicable)
- TDS certificates and Form 26AS
- Details of directors and shareholding
- Bank statements for the financial year

Do you have all required company documents ready?`,
	"professional_tools_info": "Professional features cover client filing and bulk filing through the e-filing portal's ERI route. Pick a mode to continue, or start over to file an individual return.",
	"entity_itr7":             "A Trust files ITR-7. Let's proceed with the filing. Which tax regime applies?",
	"entity_itr5":             "AOP, BOI and LLP entities file ITR-5. Let's proceed with the filing. Which tax regime applies?",

	// Income sources (individual).
	"income_source_prompt":            "What's your primary source of income? This helps me recommend the right ITR form.",
	"income_salary_range":             "You have salary income. What's your annual income range? This helps determine the right ITR form.",
	"business_presumptive_question":   "You have business income. Is your business turnover below Rs 2 crores and you want to use presumptive taxation?",
	"profession_presumptive_question": "You have professional income. Is your professional receipt below Rs 50 lakhs and you want to use presumptive taxation?",
	"multiple_income_guide": `**Multiple Income Sources Guide:**

**Common Combinations:**
- **Salary + Capital Gains** -> ITR-2
- **Salary + House Property** -> ITR-2
- **Salary + Other Sources** -> ITR-2
- **Business + Other Income** -> ITR-3
- **Professional + Investment** -> ITR-3

**Key Points:**
- Multiple sources usually require ITR-2 or ITR-3
- ITR-1 only for simple salary cases
- Business income needs ITR-3 or ITR-4

What's your income combination?`,

	// Income limit.
	"other_income_question":  "Your income is below Rs 50 lakhs. Do you have any other income sources like house property, capital gains, or other sources?",
	"itr2_required_above_50": "Since your income is above Rs 50 lakhs, you need to file ITR-2. Shall we proceed with ITR-2 filing process?",
	"income_range_help": `To determine your income range, consider:

- **Gross Salary**: Before deductions
- **House Property**: Rental income (if any)
- **Capital Gains**: From investments (if any)
- **Other Sources**: Interest, dividends etc.

What's your approximate total annual income?`,
	"income_range_prompt": "I need to know your income range to suggest the right ITR form. Is your total annual income below or above Rs 50 lakhs?",

	// Other income.
	"itr2_house_property":         "Since you have house property income along with salary, you need to file ITR-2. Ready to proceed?",
	"capital_gains_112a_question": "You have capital gains. Is your Long Term Capital Gains under section 112A less than Rs 1.25 lakhs?",
	"itr2_other_sources":          "Since you have other sources of income, you need to file ITR-2. Shall we proceed with the filing process?",
	"other_income_prompt":         "Apart from salary, do you have income from house property, capital gains, or other sources?",

	// Capital gains.
	"itr1_possible_losses_question": "Since your LTCG under 112A is below Rs 1.25L, you might still be eligible for ITR-1. Do you have any carry forward losses from previous years?",
	"itr2_capital_gains":            "Since your capital gains exceed Rs 1.25L, you need to file ITR-2. Ready to start the filing process?",
	"section_112a_info": `**Section 112A** refers to Long Term Capital Gains (LTCG) on:

- **Listed Equity Shares**
- **Equity Mutual Funds**
- **Units of business trust**

If your LTCG under section 112A is <= Rs 1.25 lakhs, you might still use ITR-1.

What's your LTCG amount under section 112A?`,
	"capital_gains_prompt": "I need to know your Long Term Capital Gains amount under section 112A. Is it below Rs 1.25 lakhs?",
	"itr2_carry_forward":   "Carried forward losses cannot be reported on ITR-1, so you need to file ITR-2. Ready to proceed?",
	"carry_forward_info": `**Carry Forward Losses:**

Losses from earlier years (capital losses, house property losses) that you
set off against this year's income. Reporting them requires ITR-2; ITR-1 has
no schedule for it.

Do you have any carry forward losses from previous years?`,

	// Business / profession.
	"itr3_business":             "You'll need to file ITR-3 for regular business taxation. This requires detailed books of accounts. Ready to proceed?",
	"itr3_profession":           "You'll need to file ITR-3 for regular professional taxation. Ready to proceed with detailed filing?",
	"business_taxation_prompt":  "For business income, you can choose presumptive taxation (simplified) or regular taxation. Which would you prefer?",
	"profession_taxation_prompt": "For professional income, you can use presumptive taxation (if receipt < Rs 50L) or regular taxation. Which option?",
	"presumptive_info": `**Presumptive Taxation Scheme:**

**How it Works:**
- Declare income as a percentage of turnover
- No detailed books needed
- Simplified tax calculation

**Rates:**
- 8% of business turnover (6% for digital receipts)
- 50% of gross receipts for professionals

**Pros:** simple and quick, no audit requirements, lower compliance cost.

**Cons:** may pay more tax, limited deductions.

Still want to use presumptive taxation?`,

	// Multiple income combinations.
	"itr2_salary_capital_gains":  "Salary + Capital Gains requires ITR-2 filing. Shall we proceed with ITR-2?",
	"itr2_salary_house_property": "Salary + House Property income requires ITR-2. Ready to start filing?",
	"itr3_business_multiple":     "Business income with other sources requires ITR-3. Shall we proceed?",
	"income_source_help": `**Income Source Identification Help:**

**Ask Yourself:**
- Do I receive salary/pension? -> Salary Income
- Do I own rental property? -> House Property
- Did I sell shares/property? -> Capital Gains
- Do I run a business? -> Business Income
- Am I a freelancer/consultant? -> Professional Income
- Do I earn interest/dividends? -> Other Sources

**Common Combinations:**
- Salaried + Investor = Salary + Capital Gains
- Salaried + Landlord = Salary + House Property
- Business Owner + Investor = Business + Capital Gains

What income sources do you have?`,

	// Recommendations.
	"itr1_recommendation": `**ITR-1 (Sahaj) Recommended for you!**

**Perfect for:**
- Salary income only
- Income < Rs 50 lakhs
- Simple tax situation

**Next Steps:**
1. Choose tax regime
2. Enter personal details
3. Input salary details
4. Submit and e-verify

Ready to proceed?`,
	"itr2_details": `**ITR-2 Details:**

**Use ITR-2 when you have:**
- Salary + Capital Gains
- Multiple house properties
- Income > Rs 50 lakhs
- Foreign income/assets
- Carried forward losses

**Additional Requirements:**
- Capital gains computation
- Foreign asset disclosure (if applicable)
- Schedules for the various income sources

**Processing Time:** Slightly longer than ITR-1`,
	"itr3_details": `**ITR-3 Details:**

**Required for:**
- Business income (regular taxation)
- Professional income (regular taxation)
- Maintained books of accounts
- Multiple income sources with business

**Requirements:**
- Profit & Loss statement
- Balance sheet
- Tax audit (if applicable)

**Note:** More complex than ITR-1/ITR-2`,
	"itr4_recommendation": `**ITR-4 (Sugam) - Great Choice!**

**Presumptive Taxation Benefits:**
- No books of accounts required
- Simplified calculations
- Lower compliance burden

**Eligibility:**
- Business turnover < Rs 2 crores
- Professional receipt < Rs 50 lakhs

This makes filing much simpler!`,
	"itr2_prompt": "ITR-2 is required for your income profile. Ready to proceed with filing?",
	"itr3_prompt": "ITR-3 is for business/professional income with regular taxation. Ready to proceed?",

	// Regime selection.
	"regime_question_itr1": "Great! Let's proceed with ITR-1. First, you need to choose your tax regime. Which tax regime do you want to use?",
	"regime_question_itr2": "Perfect! Let's proceed with ITR-2 filing. Which tax regime would you like to choose?",
	"regime_question_itr3": "Excellent! ITR-3 filing requires detailed books of accounts. Which tax regime do you prefer?",
	"regime_question_itr4": "Great choice! ITR-4 with presumptive taxation is simpler. Which tax regime works better for you?",
	"tax_regime_comparison": `**Tax Regime Comparison:**

**New Regime:**
- Lower tax rates, simple calculation
- Limited deductions; no 80C, HRA benefits

**Old Regime:**
- Higher tax rates, complex calculations
- Multiple deductions: 80C, HRA, home loan benefits

**Recommendation:**
- New: if minimal investments/deductions
- Old: if significant 80C, HRA, home loan

**Tip:** You can switch regimes each year!

Which regime suits your situation?`,
	"regime_prompt": "Please choose your tax regime. This affects your tax calculation and deductions.",

	// Personal details / PAN.
	"personal_details_new_regime": "You've selected the New Tax Regime. Now let's enter your personal details. Please provide your PAN number:",
	"personal_details_old_regime": "You've selected the Old Tax Regime. Let's proceed with personal details. Please provide your PAN number:",
	"pan_invalid":                 "Please provide a valid PAN number (format: ABCDE1234F):",
	"pan_format_help":             "PAN format is ABCDE1234F (5 letters + 4 numbers + 1 letter). Please enter your PAN:",
	"pan_prompt":                  "I need your PAN number to proceed. Please enter your PAN (format: ABCDE1234F):",
	"personal_details_list": `**Personal Details Required:**

**Basic Information:**
- PAN Number
- Mobile Number
- Email Address
- Address details
- Date of Birth

**Tax Related:**
- Residential Status
- Occupation and employer details
- Bank account details

Let's start with your PAN number:`,

	// Residential status.
	"exempt_income_question_resident":    "Residential status: Indian Resident. Do you have any exempt income to declare (like agricultural income, etc.)?",
	"exempt_income_question_nonresident": "Residential status: Non-Resident. Do you have any exempt income to declare?",
	"residential_status_prompt":          "Please specify your residential status for tax purposes:",
	"residential_status_help": `**Residential Status Guide:**

**Resident:** if you are in India for:
- 182+ days in the current year, OR
- 60+ days in the current year plus 365+ days in the last 4 years

**Non-Resident:** if you don't meet the resident criteria

**Impact on Taxation:**
- Resident: tax on global income
- Non-Resident: tax only on India income

**Most Common:** Indian citizens living in India = Resident

Which category applies to you?`,

	// Exempt income.
	"income_details_intro":   "No exempt income noted. Now let's input your income details. Based on your profile, please provide your income information:",
	"exempt_income_entry":    "Please specify your exempt income sources and amounts:",
	"exempt_income_prompt":   "Do you have any exempt income to declare (like agricultural income)?",
	"exempt_income_recorded": "Exempt income recorded. Now let's input your income details. Based on your profile, please provide your income information:",
	"exempt_income_info": `**Exempt Income Examples:**

**Common Exempt Sources:**
- Agricultural income
- Gifts < Rs 50,000
- Scholarship/fellowship
- Life insurance maturity
- Gratuity (within limits)
- PPF withdrawal
- HRA (exempt portion)

**Important:** must be declared even if exempt; required for complete disclosure.

Do you have any of these income sources?`,

	// TDS / Form-16.
	"tax_calculation_ready": "Perfect! With your TDS certificates, let's calculate your tax liability. The system will highlight any mismatches. Ready to calculate?",
	"tds_prompt":            "Do you have your Form-16 and TDS certificates to verify tax deductions?",
	"tds_help": `**TDS Certificate Help:**

**Where to Get TDS Certificates:**
- Form-16: from employer
- Form-16A: from banks (interest)
- Form-16B: from property buyers

**Online Download:**
- 26AS statement from the IT portal shows all TDS in one place

**If Missing:** contact the deductor directly, or use 26AS as an alternative.

Can you proceed with available documents?`,
	"form16_info": `**Form-16 Information:**

**What is Form-16:**
- TDS certificate from your employer
- Shows salary and tax deducted
- Issued annually, essential for ITR filing

**How to Get:**
- Request from HR/Accounts
- Usually emailed in April/May
- Download from the employer portal

Do you have your Form-16?`,

	// Tax calculation.
	"tax_payable_question": "Tax calculation completed! The system has processed your income and deductions. Is there any remaining tax payable after TDS?",
	"calculate_prompt":     "Ready to calculate your tax liability based on your income and deductions?",
	"gross_salary_question": "Let me help you calculate your tax. What's your gross annual salary (before deductions)?",
	"tax_calculation_info": `**Tax Calculation Process:**

1. Gross income calculation
2. Deductions (80C, 80D, etc.)
3. Taxable income determination
4. Tax rate application
5. TDS/advance tax adjustment
6. Final tax payable or refund

**Result:** exact tax liability and refund amount.

Shall we proceed with calculation?`,
	"tax_summary": `**Tax Summary:**

**Calculation Breakdown:**
- Total Income: [Calculated]
- Total Deductions: [Applied]
- Taxable Income: [Computed]
- Total Tax Liability: [Final]
- TDS/Advance Tax: [Paid]
- Net Payable/Refund: [Result]

**Next Steps:**
- Tax payable: make payment
- Refund due: complete filing for refund

What's your situation?`,
	"tax_payable_prompt": "Based on the calculation, is there any remaining tax payable after considering TDS?",

	// Payment.
	"pay_tax_guidance":       "You have remaining tax to pay. You can pay online through the IT portal. Would you like guidance on payment methods?",
	"filing_finalize_refund": "Great! You're eligible for a tax refund. Let's complete your filing process. Ready to finalize and submit your ITR?",
	"payment_initiated":      "Tax payment process initiated. Once payment is confirmed, we can complete your filing. Ready to finalize your ITR submission?",
	"payment_prompt":         "You need to pay the remaining tax before completing filing. Shall we proceed with online payment?",
	"payment_methods": `**Tax Payment Methods:**

**Online Payment:**
- Net Banking (all major banks)
- Credit/Debit Cards
- UPI Payment
- IT e-payment portal

**Offline Payment:**
- Bank challan (ITNS 280) at authorized branches

**Recommended:** online payment for instant confirmation.

**Required Info:** PAN number, assessment year, type of payment (Income Tax).

Ready to make payment?`,

	// Submission and ITR-V.
	"itr_v_download_question": "Excellent! Your ITR filing is complete. You can now download your ITR-V (acknowledgment). Would you like to download it?",
	"filing_submit_prompt":    "Your ITR is ready for submission. Shall we complete the filing process?",
	"everify_method_question": "ITR-V downloaded successfully! Now you need to e-verify your ITR within 120 days. How would you like to e-verify?",
	"everify_proceed":         "Let's proceed with e-verification. Which method would you prefer for e-verification?",
	"itr_v_prompt":            "Filing completed! Would you like to download your ITR-V acknowledgment?",
	"post_filing_steps": `**Post-Filing Steps:**

**Immediate (Within 120 days):**
- E-verify your ITR
- Save the confirmation email
- Download ITR-V

**Within 30 days:**
- Check processing status
- Track refund (if applicable)

**Important Notes:**
- Refund timeline: 45-60 days
- Helpline: 1800-103-0025

Any questions about these steps?`,

	// E-verification.
	"everify_aadhaar_done": "E-verification via Aadhaar OTP is the most convenient method. You'll receive an OTP on your registered mobile. Process completed!",
	"everify_demat_done":   "E-verification via Demat account selected. Please use your demat account credentials to complete verification. Done!",
	"everify_bank_done":    "E-verification via bank account/net banking selected. Use your bank credentials to verify. Process completed!",
	"everify_method_prompt": "Please choose your preferred e-verification method:",
	"everify_info": `**E-verification Information:**

**What is E-verification:**
- Electronic confirmation of your ITR
- Must be done within 120 days
- ITR is invalid without it

**Available Methods:**
- Aadhaar OTP (recommended: instant, SMS OTP to registered mobile)
- Net Banking
- Demat Account
- EVC (Electronic Verification Code)

Which method would you prefer?`,

	// Document checklists.
	"itr1_documents": `**ITR-1 Document Checklist:**

- Form-16 from employer
- Form 26AS (tax credit statement)
- Bank account details
- Aadhaar and PAN
- Interest certificates from banks
- Investment proofs (80C, 80D) if using old regime

Ready to proceed with filing?`,
	"itr2_documents": `**ITR-2 Document Checklist:**

- Form-16 from employer
- Capital gains statements from brokers
- Property documents and rent receipts
- Form 26AS (tax credit statement)
- Foreign asset details (if applicable)
- Loss statements from previous years

Ready to proceed with filing?`,
	"itr3_documents": `**ITR-3 Document Checklist:**

- Profit & Loss statement
- Balance sheet
- Books of accounts
- Tax audit report (if applicable)
- TDS certificates and Form 26AS
- Bank statements for the financial year

Ready to proceed with filing?`,
	"itr4_documents": `**ITR-4 Document Checklist:**

- Turnover/gross receipt details
- Bank statements
- Form 26AS (tax credit statement)
- Aadhaar and PAN
- GST details (if registered)

Ready to proceed with filing?`,

	// Completion.
	"receipt_info":    "You can download your e-verification receipt from the IT portal. Your ITR filing is now complete and verified!",
	"questions_prompt": "I'm here to help! What questions do you have about your ITR filing?",
}
