package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/sahaj/pkg/domain"
	"github.com/aretw0/sahaj/pkg/engine"
)

func TestTableShape(t *testing.T) {
	table := engine.New().Table()

	t.Run("Covers All States", func(t *testing.T) {
		for _, state := range domain.AllStates {
			assert.Contains(t, table, state, "state %q has no rules", state)
		}
	})

	t.Run("Default Rule Closes Every State", func(t *testing.T) {
		for state, rules := range table {
			require.NotEmpty(t, rules, "state %q", state)
			last := rules[len(rules)-1]
			assert.True(t, last.Default(), "state %q last rule must be guard-less", state)
			for i, rule := range rules[:len(rules)-1] {
				assert.False(t, rule.Default(), "state %q rule %d unreachable guard", state, i)
			}
		}
	})

	t.Run("Transitions Target Known States", func(t *testing.T) {
		for state, rules := range table {
			for _, rule := range rules {
				if rule.Next != "" {
					assert.True(t, rule.Next.Valid(), "state %q transitions to unknown %q", state, rule.Next)
				}
			}
		}
	})

	t.Run("Every Rule Has Content And Options", func(t *testing.T) {
		for state, rules := range table {
			for i, rule := range rules {
				assert.NotEmpty(t, rule.ContentKey, "state %q rule %d", state, i)
				assert.NotEmpty(t, rule.Options, "state %q rule %d", state, i)
			}
		}
	})
}

func TestEvaluateTotality(t *testing.T) {
	e := engine.New()

	for _, state := range domain.AllStates {
		out := e.Evaluate(state, nil, "xyzzy qwfpgj")
		assert.True(t, out.Fallback, "state %q", state)
		assert.Equal(t, state, out.Next, "fallback must not leave %q", state)
		assert.NotEmpty(t, out.ContentKey, "state %q", state)
		assert.NotEmpty(t, out.Options, "state %q", state)
	}
}

func TestEvaluateUnknownState(t *testing.T) {
	e := engine.New()

	out := e.Evaluate("no_such_step", nil, "hello")
	assert.True(t, out.Fallback)
	assert.Equal(t, domain.StateID("no_such_step"), out.Next)
	assert.Equal(t, "fallback", out.ContentKey)
}

func TestGlobalCommands(t *testing.T) {
	e := engine.New()

	t.Run("Restart From Every State", func(t *testing.T) {
		for _, state := range domain.AllStates {
			out := e.Evaluate(state, map[string]string{"pan": "ABCDE1234F"}, "let's start over")
			assert.True(t, out.Reset, "state %q", state)
			assert.Equal(t, domain.StateStart, out.Next, "state %q", state)
			assert.Equal(t, "restart", out.GlobalCommand, "state %q", state)
			assert.Empty(t, out.ContentData, "restart must not carry stale data, state %q", state)
		}
	})

	t.Run("Help Keeps State And Data", func(t *testing.T) {
		data := map[string]string{"final_form": "ITR-2"}
		out := e.Evaluate(domain.StateChooseTaxRegime, data, "I need some assistance")
		assert.False(t, out.Reset)
		assert.Equal(t, domain.StateChooseTaxRegime, out.Next)
		assert.Equal(t, "help", out.GlobalCommand)
		assert.Equal(t, "ITR-2", out.ContentData["final_form"])
	})

	t.Run("Restart Wins Over State Rules", func(t *testing.T) {
		// "reset" is no state's guard, but "yes" rules would otherwise
		// match a combined message. Restart is checked first.
		out := e.Evaluate(domain.StateCheckAadhaarLink, nil, "yes reset everything")
		assert.True(t, out.Reset)
		assert.Equal(t, "restart", out.GlobalCommand)
	})

	t.Run("Help Wins Everywhere Including Terminal", func(t *testing.T) {
		out := e.Evaluate(domain.StateVerificationComplete, nil, "help")
		assert.Equal(t, "help", out.GlobalCommand)
		assert.Equal(t, domain.StateVerificationComplete, out.Next)
	})
}

func TestEvaluateDeterminism(t *testing.T) {
	e := engine.New()
	data := map[string]string{"filer_type": "individual"}

	first := e.Evaluate(domain.StateIndividualType, data, "salary income")
	second := e.Evaluate(domain.StateIndividualType, data, "salary income")
	assert.Equal(t, first, second)
}

func TestEvaluateDoesNotMutateInputs(t *testing.T) {
	e := engine.New()
	data := map[string]string{"filer_type": "individual"}

	out := e.Evaluate(domain.StateIndividualType, data, "salary")
	require.Equal(t, domain.StateCheckIncomeLimit, out.Next)
	assert.Equal(t, map[string]string{"filer_type": "individual"}, data)
	assert.Equal(t, "salary", out.ContentData["income_type"], "patch visible in merged view")
	assert.Equal(t, "individual", out.ContentData["filer_type"])
}

func TestPersonalDetailsPAN(t *testing.T) {
	e := engine.New()
	state := domain.StateEnterPersonalDetails

	t.Run("Valid PAN Advances", func(t *testing.T) {
		out := e.Evaluate(state, nil, "ABCDE1234F")
		assert.Equal(t, domain.StateResidentialStatus, out.Next)
		assert.Equal(t, "ABCDE1234F", out.DataPatch["pan"])
		assert.Equal(t, "pan_recorded", out.ContentKey)
	})

	t.Run("PAN Found Inside Sentence", func(t *testing.T) {
		out := e.Evaluate(state, nil, "my pan is abcde1234f thanks")
		assert.Equal(t, domain.StateResidentialStatus, out.Next)
		assert.Equal(t, "ABCDE1234F", out.DataPatch["pan"])
	})

	t.Run("Malformed Attempt Reprompts", func(t *testing.T) {
		out := e.Evaluate(state, nil, "my pan is ABCDE123F")
		assert.Equal(t, state, out.Next)
		assert.Equal(t, "pan_invalid", out.ContentKey)
		assert.Empty(t, out.DataPatch)
	})

	t.Run("Info Question Falls Through To Table", func(t *testing.T) {
		out := e.Evaluate(state, nil, "what details are needed")
		assert.Equal(t, state, out.Next)
		assert.Equal(t, "personal_details_list", out.ContentKey)
	})

	t.Run("Gibberish Reprompts", func(t *testing.T) {
		out := e.Evaluate(state, nil, "blue")
		assert.True(t, out.Fallback)
		assert.Equal(t, "pan_prompt", out.ContentKey)
	})
}

// Guard-order resolution for messages that hit more than one rule. These
// pin the table's documented behavior, not an ideal.
func TestGuardOrder(t *testing.T) {
	e := engine.New()

	t.Run("Non-Resident Hits Resident Guard First", func(t *testing.T) {
		out := e.Evaluate(domain.StateResidentialStatus, nil, "non-resident")
		assert.Equal(t, "resident", out.DataPatch["residential_status"])
	})

	t.Run("NRI Reaches Non-Resident Guard", func(t *testing.T) {
		out := e.Evaluate(domain.StateResidentialStatus, nil, "nri")
		assert.Equal(t, "non-resident", out.DataPatch["residential_status"])
	})

	t.Run("Above 50 Lakh Hits Below Guard Via 50", func(t *testing.T) {
		out := e.Evaluate(domain.StateCheckIncomeLimit, nil, "above 50 lakh")
		assert.Equal(t, "below_50L", out.DataPatch["income_range"])
	})

	t.Run("Above Without Amount Reaches Above Guard", func(t *testing.T) {
		out := e.Evaluate(domain.StateCheckIncomeLimit, nil, "above")
		assert.Equal(t, "above_50L", out.DataPatch["income_range"])
		assert.Equal(t, domain.StateITR2Recommendation, out.Next)
	})

	t.Run("Bank Account Hits Demat Guard Via Account", func(t *testing.T) {
		out := e.Evaluate(domain.StateEVerifyITR, nil, "bank account")
		assert.Equal(t, "demat", out.DataPatch["verify_method"])
	})

	t.Run("Net Banking Reaches Bank Guard", func(t *testing.T) {
		out := e.Evaluate(domain.StateEVerifyITR, nil, "net banking")
		assert.Equal(t, "bank", out.DataPatch["verify_method"])
	})

	t.Run("Carry Forward Question Stays Put", func(t *testing.T) {
		// The advertised quick option must render the info text, not
		// commit the user to ITR-2.
		out := e.Evaluate(domain.StateITR1Possible, nil, "what are carry forward losses")
		assert.Equal(t, "carry_forward_info", out.ContentKey)
		assert.Equal(t, domain.StateITR1Possible, out.Next)
		assert.Empty(t, out.DataPatch)
	})

	t.Run("Yes Have Losses Commits To ITR2", func(t *testing.T) {
		out := e.Evaluate(domain.StateITR1Possible, nil, "yes have losses")
		assert.Equal(t, domain.StateITR2Recommendation, out.Next)
		assert.Equal(t, "ITR-2", out.DataPatch["final_form"])
	})
}

func TestPhraseGuards(t *testing.T) {
	e := engine.New()

	t.Run("Contiguous Phrase Matches", func(t *testing.T) {
		out := e.Evaluate(domain.StateCheckOtherIncome, nil, "I have only salary income")
		assert.Equal(t, "ITR-1", out.DataPatch["final_form"])
	})

	t.Run("Split Phrase Does Not Match", func(t *testing.T) {
		out := e.Evaluate(domain.StateStart, nil, "I want to start, but think it over first")
		assert.False(t, out.Reset, "start...over split across tokens is not the restart phrase")
	})

	t.Run("Token Boundaries Respected", func(t *testing.T) {
		// "yesterday" must not satisfy a "yes" guard.
		out := e.Evaluate(domain.StateCheckAadhaarLink, nil, "yesterday")
		assert.True(t, out.Fallback)
	})
}

// Walks the salaried ITR-1 journey end to end, accumulating the data patches
// the way the session layer does between turns.
func TestSalariedITR1Journey(t *testing.T) {
	e := engine.New()
	data := map[string]string{}

	step := func(state domain.StateID, message string, wantNext domain.StateID, wantContent string) {
		t.Helper()
		out := e.Evaluate(state, data, message)
		require.Equal(t, wantNext, out.Next, "message %q from %q", message, state)
		require.Equal(t, wantContent, out.ContentKey, "message %q from %q", message, state)
		require.False(t, out.Fallback, "message %q from %q", message, state)
		for k, v := range out.DataPatch {
			data[k] = v
		}
	}

	step(domain.StateStart, "start filing", domain.StateCheckAadhaarLink, "begin_filing")
	step(domain.StateCheckAadhaarLink, "yes", domain.StateSelectFilerType, "aadhaar_linked")
	step(domain.StateSelectFilerType, "individual", domain.StateIndividualType, "filer_individual")
	step(domain.StateIndividualType, "salary", domain.StateCheckIncomeLimit, "income_salary_range")
	step(domain.StateCheckIncomeLimit, "below 50 lakh", domain.StateCheckOtherIncome, "other_income_question")
	step(domain.StateCheckOtherIncome, "only salary", domain.StateITR1Recommendation, "itr1_recommendation")
	step(domain.StateITR1Recommendation, "proceed with ITR-1", domain.StateChooseTaxRegime, "regime_question_itr1")
	step(domain.StateChooseTaxRegime, "new regime", domain.StateEnterPersonalDetails, "personal_details_new_regime")
	step(domain.StateEnterPersonalDetails, "ABCDE1234F", domain.StateResidentialStatus, "pan_recorded")
	step(domain.StateResidentialStatus, "resident", domain.StateDeclareExemptIncome, "exempt_income_question_resident")
	step(domain.StateDeclareExemptIncome, "no exempt income", domain.StateInputIncomeDetails, "income_details_intro")
	step(domain.StateInputIncomeDetails, "salary details", domain.StateVerifyTDSAdvanceTax, "tds_verification_question")
	step(domain.StateVerifyTDSAdvanceTax, "yes have form-16", domain.StateCalculateTaxLiability, "tax_calculation_ready")
	step(domain.StateCalculateTaxLiability, "calculate tax", domain.StateCheckTaxPayable, "tax_payable_question")
	step(domain.StateCheckTaxPayable, "no refund due", domain.StateFilingComplete, "filing_finalize_refund")
	step(domain.StateFilingComplete, "complete filing", domain.StateDownloadITRV, "itr_v_download_question")
	step(domain.StateDownloadITRV, "download ITR-V", domain.StateEVerifyITR, "everify_method_question")
	step(domain.StateEVerifyITR, "aadhaar OTP", domain.StateVerificationComplete, "everify_aadhaar_done")
	step(domain.StateVerificationComplete, "done", domain.StateVerificationComplete, "completion")

	assert.Equal(t, map[string]string{
		"filer_type":         "individual",
		"income_type":        "salary",
		"income_range":       "below_50L",
		"final_form":         "ITR-1",
		"tax_regime":         "new",
		"pan":                "ABCDE1234F",
		"residential_status": "resident",
		"verify_method":      "aadhaar",
	}, data)
}

func TestMultipleSourcesITR2Branch(t *testing.T) {
	e := engine.New()

	out := e.Evaluate(domain.StateIndividualType, nil, "multiple sources")
	require.Equal(t, domain.StateMultipleIncomeCheck, out.Next)

	out = e.Evaluate(domain.StateMultipleIncomeCheck, nil, "salary + capital gains")
	require.Equal(t, domain.StateITR2Recommendation, out.Next)
	assert.Equal(t, "ITR-2", out.DataPatch["final_form"])
	assert.Equal(t, "salary_capital_gains", out.ContextPatch["reason"])

	out = e.Evaluate(domain.StateITR2Recommendation, map[string]string{"final_form": "ITR-2"}, "yes proceed")
	assert.Equal(t, domain.StateChooseTaxRegime, out.Next)
	assert.Equal(t, "regime_question_itr2", out.ContentKey)
}

func TestTaxCalculationDetour(t *testing.T) {
	e := engine.New()

	out := e.Evaluate(domain.StateITR1Recommendation, nil, "tax calculation")
	require.Equal(t, domain.StateTaxCalculation, out.Next)
	assert.Equal(t, "gross_salary_question", out.ContentKey)

	out = e.Evaluate(domain.StateTaxCalculation, nil, "proceed")
	assert.Equal(t, domain.StateITR1Recommendation, out.Next)
}
