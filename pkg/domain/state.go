package domain

// StateID identifies a step in the filing dialogue.
type StateID string

// Dialogue states. The graph is not a DAG: global commands create back-edges
// from every state to StateStart, and every state re-enters itself on
// unmatched input.
const (
	StateStart                 StateID = "start"
	StateCheckAadhaarLink      StateID = "check_aadhaar_link"
	StateGuideAadhaarLinking   StateID = "guide_aadhaar_linking"
	StateSelectFilerType       StateID = "select_filer_type"
	StateCompanyFiling         StateID = "company_filing"
	StateProfessionalFiling    StateID = "professional_filing"
	StateEntityFiling          StateID = "entity_filing"
	StateIndividualType        StateID = "individual_type_selection"
	StateCheckIncomeLimit      StateID = "check_income_limit"
	StateCheckOtherIncome      StateID = "check_other_income"
	StateCheckCapitalGains     StateID = "check_capital_gains_amount"
	StateITR1Possible          StateID = "itr1_possible"
	StateBusinessIncomeCheck   StateID = "business_income_check"
	StateProfessionIncomeCheck StateID = "profession_income_check"
	StateMultipleIncomeCheck   StateID = "multiple_income_check"
	StateITR1Recommendation    StateID = "itr1_recommendation"
	StateITR2Recommendation    StateID = "itr2_recommendation"
	StateITR3Recommendation    StateID = "itr3_recommendation"
	StateITR4Recommendation    StateID = "itr4_recommendation"
	StateTaxCalculation        StateID = "tax_calculation"
	StateChooseTaxRegime       StateID = "choose_tax_regime"
	StateEnterPersonalDetails  StateID = "enter_personal_details"
	StateResidentialStatus     StateID = "residential_status"
	StateDeclareExemptIncome   StateID = "declare_exempt_income"
	StateEnterExemptIncome     StateID = "enter_exempt_income"
	StateInputIncomeDetails    StateID = "input_income_details"
	StateVerifyTDSAdvanceTax   StateID = "verify_tds_advance_tax"
	StateCalculateTaxLiability StateID = "calculate_tax_liability"
	StateCheckTaxPayable       StateID = "check_tax_payable"
	StatePayRemainingTax       StateID = "pay_remaining_tax"
	StateFilingComplete        StateID = "filing_complete"
	StateDownloadITRV          StateID = "download_itr_v"
	StateEVerifyITR            StateID = "e_verify_itr"
	StateVerificationComplete  StateID = "verification_complete"
)

// AllStates lists every defined dialogue state in flow order.
// Used for graph export and for totality checks in tests.
var AllStates = []StateID{
	StateStart,
	StateCheckAadhaarLink,
	StateGuideAadhaarLinking,
	StateSelectFilerType,
	StateCompanyFiling,
	StateProfessionalFiling,
	StateEntityFiling,
	StateIndividualType,
	StateCheckIncomeLimit,
	StateCheckOtherIncome,
	StateCheckCapitalGains,
	StateITR1Possible,
	StateBusinessIncomeCheck,
	StateProfessionIncomeCheck,
	StateMultipleIncomeCheck,
	StateITR1Recommendation,
	StateITR2Recommendation,
	StateITR3Recommendation,
	StateITR4Recommendation,
	StateTaxCalculation,
	StateChooseTaxRegime,
	StateEnterPersonalDetails,
	StateResidentialStatus,
	StateDeclareExemptIncome,
	StateEnterExemptIncome,
	StateInputIncomeDetails,
	StateVerifyTDSAdvanceTax,
	StateCalculateTaxLiability,
	StateCheckTaxPayable,
	StatePayRemainingTax,
	StateFilingComplete,
	StateDownloadITRV,
	StateEVerifyITR,
	StateVerificationComplete,
}

var stateIndex = func() map[StateID]struct{} {
	idx := make(map[StateID]struct{}, len(AllStates))
	for _, s := range AllStates {
		idx[s] = struct{}{}
	}
	return idx
}()

// Valid reports whether the state is one of the defined dialogue states.
// An invalid state never errors at runtime; the engine funnels it into the
// global fallback rule.
func (s StateID) Valid() bool {
	_, ok := stateIndex[s]
	return ok
}
