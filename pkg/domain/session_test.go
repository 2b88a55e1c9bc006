package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aretw0/sahaj/pkg/domain"
)

func TestSessionApply(t *testing.T) {
	sess := domain.NewSession("s1")
	sess.UserData["filer_type"] = "individual"

	sess.Apply(domain.StateCheckIncomeLimit,
		map[string]string{"income_type": "salary"},
		map[string]string{"reason": "salary_only"},
	)

	assert.Equal(t, domain.StateCheckIncomeLimit, sess.State)
	assert.Equal(t, "individual", sess.UserData["filer_type"], "existing keys survive")
	assert.Equal(t, "salary", sess.UserData["income_type"])
	assert.Equal(t, "salary_only", sess.Context["reason"])
}

func TestSessionApplyLastWriteWins(t *testing.T) {
	sess := domain.NewSession("s1")
	sess.UserData["final_form"] = "ITR-1"

	sess.Apply(sess.State, map[string]string{"final_form": "ITR-2"}, nil)
	assert.Equal(t, "ITR-2", sess.UserData["final_form"])
}

func TestSessionReset(t *testing.T) {
	sess := domain.NewSession("s1")
	sess.Apply(domain.StateChooseTaxRegime,
		map[string]string{"pan": "ABCDE1234F"},
		map[string]string{"reason": "x"},
	)

	sess.Reset()
	assert.Equal(t, "s1", sess.ID)
	assert.Equal(t, domain.StateStart, sess.State)
	assert.Empty(t, sess.UserData)
	assert.Empty(t, sess.Context)
}

func TestSessionClone(t *testing.T) {
	sess := domain.NewSession("s1")
	sess.UserData["pan"] = "ABCDE1234F"

	clone := sess.Clone()
	clone.UserData["pan"] = "ZZZZZ9999Z"
	clone.State = domain.StateFilingComplete

	assert.Equal(t, "ABCDE1234F", sess.UserData["pan"])
	assert.Equal(t, domain.StateStart, sess.State)
}

func TestStateValid(t *testing.T) {
	assert.True(t, domain.StateStart.Valid())
	assert.True(t, domain.StateVerificationComplete.Valid())
	assert.False(t, domain.StateID("bogus").Valid())
}
