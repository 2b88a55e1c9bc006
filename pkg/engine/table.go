package engine

import "github.com/aretw0/sahaj/pkg/domain"

// dialogueTable is the ITR filing decision tree as data: for each state an
// ordered list of guarded rules, closed by a guard-less default rule that
// re-prompts without leaving the state. Rule order is significant; the first
// matching guard wins.
//
// Guard keyword lists and quick options mirror the filing flowchart. Some
// single-word guards deliberately overlap across rules of one state
// ("regime", "account"); order resolves them.
var dialogueTable = map[domain.StateID][]domain.Rule{
	domain.StateStart: {
		{
			Keywords:   []string{"start", "begin", "file", "filing", "yes", "proceed"},
			Next:       domain.StateCheckAadhaarLink,
			ContentKey: "begin_filing",
			Options:    []string{"yes", "no", "not sure"},
		},
		{
			Keywords:   []string{"which", "itr", "form", "type"},
			ContentKey: "itr_form_guide",
			Options:    []string{"start filing", "more info", "help"},
		},
		{
			ContentKey: "welcome",
			Options:    []string{"start filing", "help", "which itr form"},
		},
	},

	domain.StateCheckAadhaarLink: {
		{
			Keywords:   []string{"yes", "linked", "done", "completed"},
			Next:       domain.StateSelectFilerType,
			ContentKey: "aadhaar_linked",
			Options:    []string{"individual", "company", "professional", "other entity"},
		},
		{
			Keywords:   []string{"no", "not linked", "unlinked"},
			Next:       domain.StateGuideAadhaarLinking,
			ContentKey: "aadhaar_linking_guide",
			Options:    []string{"done linking", "need help", "continue anyway"},
		},
		{
			Keywords:   []string{"not sure", "dont know", "unsure", "check"},
			ContentKey: "aadhaar_link_check",
			Options:    []string{"yes", "no", "will check later"},
		},
		{
			ContentKey: "aadhaar_link_prompt",
			Options:    []string{"yes", "no", "not sure"},
		},
	},

	domain.StateGuideAadhaarLinking: {
		{
			Keywords:   []string{"done", "linked", "completed"},
			Next:       domain.StateSelectFilerType,
			ContentKey: "aadhaar_done_filer_type",
			Options:    []string{"individual", "company", "professional", "other entity"},
		},
		{
			Keywords:   []string{"continue", "anyway", "proceed"},
			Next:       domain.StateSelectFilerType,
			ContentKey: "aadhaar_skip_filer_type",
			Options:    []string{"individual", "company", "professional", "other entity"},
		},
		{
			ContentKey: "aadhaar_linking_guide",
			Options:    []string{"done linking", "continue anyway", "need help"},
		},
	},

	domain.StateSelectFilerType: {
		{
			Keywords:   []string{"individual", "person", "salaried", "employee"},
			Next:       domain.StateIndividualType,
			DataPatch:  map[string]string{"filer_type": "individual"},
			ContentKey: "filer_individual",
			Options:    []string{"salary", "business", "profession", "multiple sources"},
		},
		{
			Keywords:   []string{"company", "corporate", "corporation"},
			Next:       domain.StateCompanyFiling,
			DataPatch:  map[string]string{"filer_type": "company"},
			ContentKey: "filer_company",
			Options:    []string{"yes", "no", "what documents"},
		},
		{
			Keywords:   []string{"professional", "ca", "tax professional", "agent"},
			Next:       domain.StateProfessionalFiling,
			DataPatch:  map[string]string{"filer_type": "professional"},
			ContentKey: "filer_professional",
			Options:    []string{"yes", "client filing", "bulk filing"},
		},
		{
			Keywords:   []string{"other", "entity", "trust", "aop", "boi", "llp"},
			Next:       domain.StateEntityFiling,
			DataPatch:  map[string]string{"filer_type": "entity"},
			ContentKey: "filer_entity",
			Options:    []string{"trust", "aop", "boi", "llp", "other"},
		},
		{
			ContentKey: "filer_type_prompt",
			Options:    []string{"individual", "company", "professional", "other entity"},
		},
	},

	domain.StateCompanyFiling: {
		{
			Keywords:   []string{"yes", "ready", "proceed"},
			Next:       domain.StateChooseTaxRegime,
			DataPatch:  map[string]string{"final_form": "ITR-6"},
			ContentKey: "company_proceed",
			Options:    []string{"new regime", "old regime", "which is better"},
		},
		{
			Keywords:   []string{"no", "what", "documents"},
			ContentKey: "itr6_documents",
			Options:    []string{"yes ready", "need more time", "what documents"},
		},
		{
			ContentKey: "filer_company",
			Options:    []string{"yes", "no", "what documents"},
		},
	},

	domain.StateProfessionalFiling: {
		{
			Keywords:   []string{"yes", "client", "bulk"},
			ContentKey: "professional_tools_info",
			Options:    []string{"client filing", "bulk filing", "start over"},
		},
		{
			ContentKey: "filer_professional",
			Options:    []string{"yes", "client filing", "bulk filing"},
		},
	},

	domain.StateEntityFiling: {
		{
			Keywords:   []string{"trust"},
			Next:       domain.StateChooseTaxRegime,
			DataPatch:  map[string]string{"final_form": "ITR-7", "entity_type": "trust"},
			ContentKey: "entity_itr7",
			Options:    []string{"new regime", "old regime", "which is better"},
		},
		{
			Keywords:   []string{"aop", "boi", "llp", "other"},
			Next:       domain.StateChooseTaxRegime,
			DataPatch:  map[string]string{"final_form": "ITR-5"},
			ContentKey: "entity_itr5",
			Options:    []string{"new regime", "old regime", "which is better"},
		},
		{
			ContentKey: "filer_entity",
			Options:    []string{"trust", "aop", "boi", "llp", "other"},
		},
	},

	domain.StateIndividualType: {
		{
			Keywords:   []string{"salary", "salaried", "employee", "wage"},
			Next:       domain.StateCheckIncomeLimit,
			DataPatch:  map[string]string{"income_type": "salary"},
			ContentKey: "income_salary_range",
			Options:    []string{"below 50 lakh", "above 50 lakh", "not sure"},
		},
		{
			Keywords:   []string{"business", "trade", "commerce"},
			Next:       domain.StateBusinessIncomeCheck,
			DataPatch:  map[string]string{"income_type": "business"},
			ContentKey: "business_presumptive_question",
			Options:    []string{"yes presumptive", "no regular", "what is presumptive"},
		},
		{
			Keywords:   []string{"profession", "professional", "freelance", "consultant"},
			Next:       domain.StateProfessionIncomeCheck,
			DataPatch:  map[string]string{"income_type": "profession"},
			ContentKey: "profession_presumptive_question",
			Options:    []string{"yes presumptive", "no regular", "what is presumptive"},
		},
		{
			Keywords:   []string{"multiple", "various", "different", "mixed"},
			Next:       domain.StateMultipleIncomeCheck,
			ContentKey: "multiple_income_guide",
			Options:    []string{"salary + capital gains", "salary + house property", "business + other", "need help"},
		},
		{
			ContentKey: "income_source_prompt",
			Options:    []string{"salary", "business", "profession", "multiple sources"},
		},
	},

	domain.StateCheckIncomeLimit: {
		{
			Keywords:   []string{"below", "under", "50", "less"},
			Next:       domain.StateCheckOtherIncome,
			DataPatch:  map[string]string{"income_range": "below_50L"},
			ContentKey: "other_income_question",
			Options:    []string{"only salary", "house property", "capital gains", "other sources"},
		},
		{
			Keywords:   []string{"above", "over", "more", "higher"},
			Next:       domain.StateITR2Recommendation,
			DataPatch:  map[string]string{"income_range": "above_50L"},
			ContentKey: "itr2_required_above_50",
			Options:    []string{"yes proceed", "tell me more", "what documents needed"},
		},
		{
			Keywords:   []string{"not sure", "unsure", "dont know"},
			ContentKey: "income_range_help",
			Options:    []string{"below 50 lakh", "above 50 lakh", "need calculation help"},
		},
		{
			ContentKey: "income_range_prompt",
			Options:    []string{"below 50 lakh", "above 50 lakh", "not sure"},
		},
	},

	domain.StateCheckOtherIncome: {
		{
			Keywords:   []string{"only salary", "just salary", "salary only"},
			Next:       domain.StateITR1Recommendation,
			DataPatch:  map[string]string{"final_form": "ITR-1"},
			ContentKey: "itr1_recommendation",
			Options:    []string{"proceed with ITR-1", "document checklist", "tax calculation"},
		},
		{
			Keywords:     []string{"house", "property", "rental", "rent"},
			Next:         domain.StateITR2Recommendation,
			DataPatch:    map[string]string{"final_form": "ITR-2"},
			ContextPatch: map[string]string{"reason": "house_property"},
			ContentKey:   "itr2_house_property",
			Options:      []string{"yes proceed", "document checklist", "tell me more"},
		},
		{
			Keywords:   []string{"capital", "gains", "shares", "mutual fund", "stocks"},
			Next:       domain.StateCheckCapitalGains,
			ContentKey: "capital_gains_112a_question",
			Options:    []string{"yes under 1.25L", "no above 1.25L", "what is 112A"},
		},
		{
			Keywords:     []string{"other", "sources", "interest", "dividend"},
			Next:         domain.StateITR2Recommendation,
			DataPatch:    map[string]string{"final_form": "ITR-2"},
			ContextPatch: map[string]string{"reason": "other_sources"},
			ContentKey:   "itr2_other_sources",
			Options:      []string{"yes proceed", "document checklist", "what documents needed"},
		},
		{
			ContentKey: "other_income_prompt",
			Options:    []string{"only salary", "house property", "capital gains", "other sources"},
		},
	},

	domain.StateCheckCapitalGains: {
		{
			Keywords:   []string{"yes", "under", "below", "1.25"},
			Next:       domain.StateITR1Possible,
			DataPatch:  map[string]string{"capital_gains": "under_1.25L"},
			ContentKey: "itr1_possible_losses_question",
			Options:    []string{"no losses", "yes have losses", "what are carry forward losses"},
		},
		{
			Keywords:     []string{"no", "above", "over"},
			Next:         domain.StateITR2Recommendation,
			DataPatch:    map[string]string{"final_form": "ITR-2"},
			ContextPatch: map[string]string{"reason": "capital_gains_high"},
			ContentKey:   "itr2_capital_gains",
			Options:      []string{"yes proceed", "document checklist", "tax calculation"},
		},
		{
			Keywords:   []string{"what", "112a", "section"},
			ContentKey: "section_112a_info",
			Options:    []string{"under 1.25L", "above 1.25L", "need help calculating"},
		},
		{
			ContentKey: "capital_gains_prompt",
			Options:    []string{"yes under 1.25L", "no above 1.25L", "what is 112A"},
		},
	},

	domain.StateITR1Possible: {
		{
			Keywords:   []string{"no losses", "no", "none"},
			Next:       domain.StateITR1Recommendation,
			DataPatch:  map[string]string{"final_form": "ITR-1"},
			ContentKey: "itr1_recommendation",
			Options:    []string{"proceed with ITR-1", "document checklist", "tax calculation"},
		},
		{
			Keywords:     []string{"yes", "have losses"},
			Next:         domain.StateITR2Recommendation,
			DataPatch:    map[string]string{"final_form": "ITR-2"},
			ContextPatch: map[string]string{"reason": "carry_forward_losses"},
			ContentKey:   "itr2_carry_forward",
			Options:      []string{"yes proceed", "document checklist", "tell me more"},
		},
		{
			Keywords:   []string{"what", "carry", "forward"},
			ContentKey: "carry_forward_info",
			Options:    []string{"no losses", "yes have losses", "need help"},
		},
		{
			ContentKey: "itr1_possible_losses_question",
			Options:    []string{"no losses", "yes have losses", "what are carry forward losses"},
		},
	},

	domain.StateBusinessIncomeCheck: {
		{
			Keywords:   []string{"yes", "presumptive", "simple"},
			Next:       domain.StateITR4Recommendation,
			DataPatch:  map[string]string{"final_form": "ITR-4", "taxation": "presumptive"},
			ContentKey: "itr4_recommendation",
			Options:    []string{"proceed with ITR-4", "document checklist", "what is presumptive"},
		},
		{
			Keywords:   []string{"no", "regular", "normal", "detailed"},
			Next:       domain.StateITR3Recommendation,
			DataPatch:  map[string]string{"final_form": "ITR-3", "taxation": "regular"},
			ContentKey: "itr3_business",
			Options:    []string{"yes proceed", "document checklist", "tell me more about ITR-3"},
		},
		{
			Keywords:   []string{"what", "taxation", "scheme"},
			ContentKey: "presumptive_info",
			Options:    []string{"yes use presumptive", "no regular taxation", "need more info"},
		},
		{
			ContentKey: "business_taxation_prompt",
			Options:    []string{"presumptive taxation", "regular taxation", "what is presumptive"},
		},
	},

	domain.StateProfessionIncomeCheck: {
		{
			Keywords:   []string{"yes", "presumptive", "simple"},
			Next:       domain.StateITR4Recommendation,
			DataPatch:  map[string]string{"final_form": "ITR-4", "taxation": "presumptive"},
			ContentKey: "itr4_recommendation",
			Options:    []string{"proceed with ITR-4", "document checklist", "what is presumptive"},
		},
		{
			Keywords:   []string{"no", "regular", "normal"},
			Next:       domain.StateITR3Recommendation,
			DataPatch:  map[string]string{"final_form": "ITR-3", "taxation": "regular"},
			ContentKey: "itr3_profession",
			Options:    []string{"yes proceed", "document checklist", "tell me more about ITR-3"},
		},
		{
			Keywords:   []string{"what", "professional"},
			ContentKey: "presumptive_info",
			Options:    []string{"yes use presumptive", "no regular taxation", "need more info"},
		},
		{
			ContentKey: "profession_taxation_prompt",
			Options:    []string{"presumptive taxation", "regular taxation", "what is presumptive"},
		},
	},

	domain.StateMultipleIncomeCheck: {
		{
			Keywords:     []string{"salary", "capital", "gains"},
			Next:         domain.StateITR2Recommendation,
			DataPatch:    map[string]string{"final_form": "ITR-2"},
			ContextPatch: map[string]string{"reason": "salary_capital_gains"},
			ContentKey:   "itr2_salary_capital_gains",
			Options:      []string{"yes proceed", "document checklist", "tax calculation"},
		},
		{
			Keywords:     []string{"house", "property"},
			Next:         domain.StateITR2Recommendation,
			DataPatch:    map[string]string{"final_form": "ITR-2"},
			ContextPatch: map[string]string{"reason": "salary_house_property"},
			ContentKey:   "itr2_salary_house_property",
			Options:      []string{"yes proceed", "document checklist", "tax calculation"},
		},
		{
			Keywords:     []string{"business", "other"},
			Next:         domain.StateITR3Recommendation,
			DataPatch:    map[string]string{"final_form": "ITR-3"},
			ContextPatch: map[string]string{"reason": "business_multiple"},
			ContentKey:   "itr3_business_multiple",
			Options:      []string{"yes proceed", "document checklist", "tell me more"},
		},
		{
			Keywords:   []string{"confused", "not sure"},
			ContentKey: "income_source_help",
			Options:    []string{"salary + capital gains", "salary + house property", "business + other", "start over"},
		},
		{
			ContentKey: "multiple_income_guide",
			Options:    []string{"salary + capital gains", "salary + house property", "business + other", "need help"},
		},
	},

	domain.StateITR1Recommendation: {
		{
			Keywords:   []string{"proceed", "yes", "start", "itr-1"},
			Next:       domain.StateChooseTaxRegime,
			ContentKey: "regime_question_itr1",
			Options:    []string{"new regime", "old regime", "which is better"},
		},
		{
			Keywords:   []string{"document", "checklist", "papers"},
			ContentKey: "itr1_documents",
			Options:    []string{"proceed with ITR-1", "tax calculation", "have documents"},
		},
		{
			Keywords:   []string{"tax", "calculation", "calculate"},
			Next:       domain.StateTaxCalculation,
			ContentKey: "gross_salary_question",
			Options:    []string{"enter amount", "need help", "use calculator"},
		},
		{
			ContentKey: "itr1_recommendation",
			Options:    []string{"proceed with ITR-1", "document checklist", "tax calculation"},
		},
	},

	domain.StateITR2Recommendation: {
		{
			Keywords:   []string{"proceed", "yes", "start", "itr-2"},
			Next:       domain.StateChooseTaxRegime,
			ContentKey: "regime_question_itr2",
			Options:    []string{"new regime", "old regime", "compare regimes"},
		},
		{
			Keywords:   []string{"document", "checklist", "needed"},
			ContentKey: "itr2_documents",
			Options:    []string{"proceed with ITR-2", "have documents", "tax calculation"},
		},
		{
			Keywords:   []string{"tell me more", "more info", "details"},
			ContentKey: "itr2_details",
			Options:    []string{"proceed with ITR-2", "document checklist", "tax calculation"},
		},
		{
			ContentKey: "itr2_prompt",
			Options:    []string{"yes proceed", "document checklist", "tell me more"},
		},
	},

	domain.StateITR3Recommendation: {
		{
			Keywords:   []string{"proceed", "yes", "start"},
			Next:       domain.StateChooseTaxRegime,
			ContentKey: "regime_question_itr3",
			Options:    []string{"new regime", "old regime", "need guidance"},
		},
		{
			Keywords:   []string{"document", "checklist"},
			ContentKey: "itr3_documents",
			Options:    []string{"proceed with ITR-3", "have documents", "need help"},
		},
		{
			Keywords:   []string{"tell me more", "more about", "details"},
			ContentKey: "itr3_details",
			Options:    []string{"proceed with ITR-3", "document checklist", "presumptive instead"},
		},
		{
			ContentKey: "itr3_prompt",
			Options:    []string{"yes proceed", "document checklist", "tell me more about ITR-3"},
		},
	},

	domain.StateITR4Recommendation: {
		{
			Keywords:   []string{"proceed", "yes", "start"},
			Next:       domain.StateChooseTaxRegime,
			ContentKey: "regime_question_itr4",
			Options:    []string{"new regime", "old regime", "help me choose"},
		},
		{
			Keywords:   []string{"document", "checklist"},
			ContentKey: "itr4_documents",
			Options:    []string{"proceed with ITR-4", "have documents", "tax calculation"},
		},
		{
			Keywords:   []string{"what", "presumptive"},
			ContentKey: "presumptive_info",
			Options:    []string{"proceed with ITR-4", "regular taxation instead", "more questions"},
		},
		{
			ContentKey: "itr4_recommendation",
			Options:    []string{"proceed with ITR-4", "document checklist", "what is presumptive"},
		},
	},

	domain.StateTaxCalculation: {
		{
			Keywords:   []string{"proceed", "continue", "done", "back"},
			Next:       domain.StateITR1Recommendation,
			ContentKey: "itr1_recommendation",
			Options:    []string{"proceed with ITR-1", "document checklist", "tax calculation"},
		},
		{
			Keywords:   []string{"calculator", "how"},
			ContentKey: "tax_calculation_info",
			Options:    []string{"enter amount", "proceed", "need help"},
		},
		{
			ContentKey: "gross_salary_question",
			Options:    []string{"enter amount", "need help", "use calculator"},
		},
	},

	domain.StateChooseTaxRegime: {
		{
			Keywords:   []string{"new", "new regime"},
			Next:       domain.StateEnterPersonalDetails,
			DataPatch:  map[string]string{"tax_regime": "new"},
			ContentKey: "personal_details_new_regime",
			Options:    []string{"enter PAN", "need help", "what details needed"},
		},
		{
			Keywords:   []string{"old", "regime", "old regime"},
			Next:       domain.StateEnterPersonalDetails,
			DataPatch:  map[string]string{"tax_regime": "old"},
			ContentKey: "personal_details_old_regime",
			Options:    []string{"enter PAN", "need help", "what details needed"},
		},
		{
			Keywords:   []string{"which", "better", "compare"},
			ContentKey: "tax_regime_comparison",
			Options:    []string{"new regime", "old regime", "calculate for me"},
		},
		{
			ContentKey: "regime_prompt",
			Options:    []string{"new regime", "old regime", "which is better"},
		},
	},

	// The PAN pattern itself is handled by the engine before these rules;
	// only informational inputs reach the table.
	domain.StateEnterPersonalDetails: {
		{
			Keywords:   []string{"what", "details", "needed"},
			ContentKey: "personal_details_list",
			Options:    []string{"enter PAN", "start entering", "need help"},
		},
		{
			Keywords:   []string{"format"},
			ContentKey: "pan_format_help",
			Options:    []string{"enter PAN", "example"},
		},
		{
			ContentKey: "pan_prompt",
			Options:    []string{"enter PAN", "need help", "what details needed"},
		},
	},

	domain.StateResidentialStatus: {
		{
			Keywords:   []string{"resident", "indian resident"},
			Next:       domain.StateDeclareExemptIncome,
			DataPatch:  map[string]string{"residential_status": "resident"},
			ContentKey: "exempt_income_question_resident",
			Options:    []string{"yes exempt income", "no exempt income", "what is exempt income"},
		},
		{
			Keywords:   []string{"non-resident", "nri", "non resident"},
			Next:       domain.StateDeclareExemptIncome,
			DataPatch:  map[string]string{"residential_status": "non-resident"},
			ContentKey: "exempt_income_question_nonresident",
			Options:    []string{"yes exempt income", "no exempt income", "what is exempt income"},
		},
		{
			Keywords:   []string{"not sure", "unsure"},
			ContentKey: "residential_status_help",
			Options:    []string{"resident", "non-resident", "need more help"},
		},
		{
			ContentKey: "residential_status_prompt",
			Options:    []string{"resident", "non-resident", "not sure"},
		},
	},

	domain.StateDeclareExemptIncome: {
		{
			Keywords:   []string{"no", "no exempt", "none"},
			Next:       domain.StateInputIncomeDetails,
			ContentKey: "income_details_intro",
			Options:    []string{"salary details", "start income entry", "what income needed"},
		},
		{
			Keywords:   []string{"yes", "have exempt", "exempt income"},
			Next:       domain.StateEnterExemptIncome,
			ContentKey: "exempt_income_entry",
			Options:    []string{"agricultural income", "other exempt income", "need help"},
		},
		{
			Keywords:   []string{"what", "exempt", "income"},
			ContentKey: "exempt_income_info",
			Options:    []string{"yes exempt income", "no exempt income", "more examples"},
		},
		{
			ContentKey: "exempt_income_prompt",
			Options:    []string{"yes exempt income", "no exempt income", "what is exempt income"},
		},
	},

	domain.StateEnterExemptIncome: {
		{
			Keywords:   []string{"agricultural", "agriculture"},
			Next:       domain.StateInputIncomeDetails,
			DataPatch:  map[string]string{"exempt_income": "agricultural"},
			ContentKey: "exempt_income_recorded",
			Options:    []string{"salary details", "start income entry", "what income needed"},
		},
		{
			Keywords:   []string{"done", "recorded", "continue", "other"},
			Next:       domain.StateInputIncomeDetails,
			DataPatch:  map[string]string{"exempt_income": "other"},
			ContentKey: "exempt_income_recorded",
			Options:    []string{"salary details", "start income entry", "what income needed"},
		},
		{
			ContentKey: "exempt_income_entry",
			Options:    []string{"agricultural income", "other exempt income", "need help"},
		},
	},

	domain.StateInputIncomeDetails: {
		{
			Keywords:   []string{"salary", "start", "proceed"},
			Next:       domain.StateVerifyTDSAdvanceTax,
			ContentKey: "tds_verification_question",
			Options:    []string{"yes have form-16", "no need help", "what is form-16"},
		},
		{
			Keywords:   []string{"what", "income", "needed"},
			ContentKey: "income_requirements",
			Options:    []string{"salary details", "start income entry", "document checklist"},
		},
		{
			ContentKey: "income_details_prompt",
			Options:    []string{"salary details", "start income entry", "what income needed"},
		},
	},

	domain.StateVerifyTDSAdvanceTax: {
		{
			Keywords:   []string{"yes", "have", "ready"},
			Next:       domain.StateCalculateTaxLiability,
			ContentKey: "tax_calculation_ready",
			Options:    []string{"calculate tax", "yes calculate", "what calculations"},
		},
		{
			Keywords:   []string{"no", "dont have"},
			ContentKey: "tds_help",
			Options:    []string{"have documents now", "proceed anyway", "download from portal"},
		},
		{
			Keywords:   []string{"what", "form-16", "tds"},
			ContentKey: "form16_info",
			Options:    []string{"yes have form-16", "no need help", "download from employer"},
		},
		{
			ContentKey: "tds_prompt",
			Options:    []string{"yes have form-16", "no need help", "what is form-16"},
		},
	},

	domain.StateCalculateTaxLiability: {
		{
			Keywords:   []string{"calculate", "yes", "proceed"},
			Next:       domain.StateCheckTaxPayable,
			ContentKey: "tax_payable_question",
			Options:    []string{"yes tax payable", "no refund due", "show calculation"},
		},
		{
			Keywords:   []string{"what", "calculations", "show me"},
			ContentKey: "tax_calculation_info",
			Options:    []string{"calculate tax", "need help", "proceed"},
		},
		{
			ContentKey: "calculate_prompt",
			Options:    []string{"calculate tax", "yes calculate", "what calculations"},
		},
	},

	domain.StateCheckTaxPayable: {
		{
			Keywords:   []string{"yes", "tax payable", "owe tax"},
			Next:       domain.StatePayRemainingTax,
			ContentKey: "pay_tax_guidance",
			Options:    []string{"pay online", "payment methods", "how to pay"},
		},
		{
			Keywords:   []string{"no", "refund", "refund due"},
			Next:       domain.StateFilingComplete,
			ContentKey: "filing_finalize_refund",
			Options:    []string{"complete filing", "yes submit", "review before submit"},
		},
		{
			Keywords:   []string{"show", "calculation", "details"},
			ContentKey: "tax_summary",
			Options:    []string{"yes tax payable", "no refund due", "need clarification"},
		},
		{
			ContentKey: "tax_payable_prompt",
			Options:    []string{"yes tax payable", "no refund due", "show calculation"},
		},
	},

	domain.StatePayRemainingTax: {
		{
			Keywords:   []string{"pay", "online", "proceed"},
			Next:       domain.StateFilingComplete,
			ContentKey: "payment_initiated",
			Options:    []string{"complete filing", "verify payment", "submit ITR"},
		},
		{
			Keywords:   []string{"payment", "methods", "how"},
			ContentKey: "payment_methods",
			Options:    []string{"pay online", "net banking", "proceed with payment"},
		},
		{
			ContentKey: "payment_prompt",
			Options:    []string{"pay online", "payment methods", "how to pay"},
		},
	},

	domain.StateFilingComplete: {
		{
			Keywords:   []string{"complete", "submit", "finalize"},
			Next:       domain.StateDownloadITRV,
			ContentKey: "itr_v_download_question",
			Options:    []string{"download ITR-V", "e-verify now", "what next"},
		},
		{
			Keywords:   []string{"review", "check", "verify"},
			ContentKey: "filing_summary",
			Options:    []string{"looks good", "complete filing", "need changes"},
		},
		{
			ContentKey: "filing_submit_prompt",
			Options:    []string{"complete filing", "yes submit", "review before submit"},
		},
	},

	domain.StateDownloadITRV: {
		{
			Keywords:   []string{"download", "yes"},
			Next:       domain.StateEVerifyITR,
			ContentKey: "everify_method_question",
			Options:    []string{"aadhaar OTP", "demat account", "bank account", "what is e-verify"},
		},
		{
			Keywords:   []string{"e-verify", "verify now"},
			Next:       domain.StateEVerifyITR,
			ContentKey: "everify_proceed",
			Options:    []string{"aadhaar OTP", "demat account", "bank account", "net banking"},
		},
		{
			Keywords:   []string{"what next", "next steps"},
			ContentKey: "post_filing_steps",
			Options:    []string{"download ITR-V", "e-verify now", "all done"},
		},
		{
			ContentKey: "itr_v_prompt",
			Options:    []string{"download ITR-V", "e-verify now", "what next"},
		},
	},

	domain.StateEVerifyITR: {
		{
			Keywords:   []string{"aadhaar", "otp"},
			Next:       domain.StateVerificationComplete,
			DataPatch:  map[string]string{"verify_method": "aadhaar"},
			ContentKey: "everify_aadhaar_done",
			Options:    []string{"all done", "download receipt", "any questions"},
		},
		{
			Keywords:   []string{"demat", "account"},
			Next:       domain.StateVerificationComplete,
			DataPatch:  map[string]string{"verify_method": "demat"},
			ContentKey: "everify_demat_done",
			Options:    []string{"all done", "download receipt", "need help"},
		},
		{
			Keywords:   []string{"bank", "net banking"},
			Next:       domain.StateVerificationComplete,
			DataPatch:  map[string]string{"verify_method": "bank"},
			ContentKey: "everify_bank_done",
			Options:    []string{"all done", "download receipt", "any questions"},
		},
		{
			Keywords:   []string{"what", "e-verify", "verification"},
			ContentKey: "everify_info",
			Options:    []string{"aadhaar OTP", "demat account", "bank account", "more options"},
		},
		{
			ContentKey: "everify_method_prompt",
			Options:    []string{"aadhaar OTP", "demat account", "bank account", "what is e-verify"},
		},
	},

	domain.StateVerificationComplete: {
		{
			Keywords:   []string{"done", "complete", "finished"},
			ContentKey: "completion",
			Options:    []string{"file another ITR", "start over", "have questions"},
		},
		{
			Keywords:   []string{"receipt", "download"},
			ContentKey: "receipt_info",
			Options:    []string{"all done", "file another ITR", "any questions"},
		},
		{
			Keywords:   []string{"questions", "doubt"},
			ContentKey: "questions_prompt",
			Options:    []string{"refund status", "amendment process", "next year filing", "start over"},
		},
		{
			ContentKey: "completion",
			Options:    []string{"all done", "download receipt", "any questions"},
		},
	},
}
