package content_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/sahaj/pkg/content"
	"github.com/aretw0/sahaj/pkg/domain"
	"github.com/aretw0/sahaj/pkg/engine"
)

func TestRegistry(t *testing.T) {
	t.Run("Static", func(t *testing.T) {
		r := content.NewRegistry()
		r.RegisterStatic("greeting", "hello")

		text, err := r.Render("greeting", nil)
		require.NoError(t, err)
		assert.Equal(t, "hello", text)
	})

	t.Run("Unknown Key", func(t *testing.T) {
		r := content.NewRegistry()

		_, err := r.Render("missing", nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrUnknownContentKey)
		assert.Contains(t, err.Error(), "missing")
	})

	t.Run("Overwrite", func(t *testing.T) {
		r := content.NewRegistry()
		r.RegisterStatic("key", "first")
		r.RegisterStatic("key", "second")

		text, err := r.Render("key", nil)
		require.NoError(t, err)
		assert.Equal(t, "second", text)
	})

	t.Run("Keys Sorted", func(t *testing.T) {
		r := content.NewRegistry()
		r.RegisterStatic("b", "")
		r.RegisterStatic("a", "")
		r.RegisterStatic("c", "")

		assert.Equal(t, []string{"a", "b", "c"}, r.Keys())
	})
}

// Every content key the transition table can emit must resolve, including
// the keys used by the global commands and the fallback.
func TestITRProviderCoversTable(t *testing.T) {
	provider := content.NewITRProvider()

	keys := map[string]bool{
		"fallback":    true,
		"restart":     true,
		"help":        true,
		"pan_recorded": true,
		"pan_invalid": true,
	}
	for _, rules := range engine.New().Table() {
		for _, rule := range rules {
			if rule.ContentKey != "" {
				keys[rule.ContentKey] = true
			}
		}
	}

	for key := range keys {
		_, err := provider.Render(key, map[string]string{})
		assert.NoError(t, err, "content key %q", key)
	}
}

func TestITRProviderRenderers(t *testing.T) {
	provider := content.NewITRProvider()

	t.Run("PAN Recorded", func(t *testing.T) {
		text, err := provider.Render("pan_recorded", map[string]string{"pan": "ABCDE1234F"})
		require.NoError(t, err)
		assert.Contains(t, text, "PAN ABCDE1234F recorded")
	})

	t.Run("TDS Question Uses Form", func(t *testing.T) {
		text, err := provider.Render("tds_verification_question", map[string]string{"final_form": "ITR-2"})
		require.NoError(t, err)
		assert.Contains(t, text, "ITR-2")
	})

	t.Run("TDS Question Defaults To ITR-1", func(t *testing.T) {
		text, err := provider.Render("tds_verification_question", nil)
		require.NoError(t, err)
		assert.Contains(t, text, "ITR-1")
	})

	t.Run("Income Requirements Known Form", func(t *testing.T) {
		text, err := provider.Render("income_requirements", map[string]string{"final_form": "ITR-4"})
		require.NoError(t, err)
		assert.Contains(t, text, "ITR-4")
		assert.Contains(t, text, "presumptive")
	})

	t.Run("Income Requirements Unknown Form", func(t *testing.T) {
		text, err := provider.Render("income_requirements", map[string]string{"final_form": "ITR-7"})
		require.NoError(t, err)
		assert.Contains(t, text, "Income details as per ITR form")
	})

	t.Run("Filing Summary", func(t *testing.T) {
		text, err := provider.Render("filing_summary", map[string]string{
			"final_form": "ITR-1",
			"filer_type": "individual",
			"tax_regime": "new",
		})
		require.NoError(t, err)
		assert.Contains(t, text, "Form Type: ITR-1")
		assert.Contains(t, text, "Filer Type: Individual")
		assert.Contains(t, text, "Tax Regime: New")
	})

	t.Run("Completion", func(t *testing.T) {
		text, err := provider.Render("completion", map[string]string{
			"final_form":    "ITR-1",
			"verify_method": "aadhaar_otp",
		})
		require.NoError(t, err)
		assert.Contains(t, text, "ITR-1")
		assert.Contains(t, text, "aadhaar_otp")
	})

	t.Run("Completion Defaults", func(t *testing.T) {
		text, err := provider.Render("completion", nil)
		require.NoError(t, err)
		assert.Contains(t, text, "chosen method")
	})

	t.Run("Statics Non Empty", func(t *testing.T) {
		for _, key := range provider.Keys() {
			text, err := provider.Render(key, map[string]string{})
			require.NoError(t, err, "key %q", key)
			assert.NotEmpty(t, strings.TrimSpace(text), "key %q", key)
		}
	})
}
