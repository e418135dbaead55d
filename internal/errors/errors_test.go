package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDerivesCategoryAndSeverity(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		category Category
		severity Severity
	}{
		{name: "config", code: ErrCodeConfigInvalid, category: CategoryConfig, severity: SeverityFatal},
		{name: "io", code: ErrCodeParseFailed, category: CategoryIO, severity: SeverityError},
		{name: "tool missing", code: ErrCodeToolMissing, category: CategoryTool, severity: SeverityFatal},
		{name: "tool failed", code: ErrCodeToolFailed, category: CategoryTool, severity: SeverityError},
		{name: "validation", code: ErrCodeInvalidInput, category: CategoryValidation, severity: SeverityError},
		{name: "internal", code: ErrCodeInternal, category: CategoryInternal, severity: SeverityError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code, "boom", nil)
			assert.Equal(t, tt.category, err.Category)
			assert.Equal(t, tt.severity, err.Severity)
		})
	}
}

func TestErrorChainSupport(t *testing.T) {
	cause := stderrors.New("underlying")
	err := Wrap(ErrCodeWriteFailed, cause)
	require.NotNil(t, err)

	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, New(ErrCodeWriteFailed, "other message", nil))
	assert.NotErrorIs(t, err, New(ErrCodeParseFailed, "other code", nil))
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, Wrap(ErrCodeInternal, nil))
}

func TestToolMissing(t *testing.T) {
	err := ToolMissing("i18nspector")
	assert.Contains(t, err.Error(), "i18nspector")
	assert.Equal(t, "i18nspector", err.Details["program"])
	assert.True(t, IsFatal(err))
}

func TestToolFailedCarriesStderr(t *testing.T) {
	err := ToolFailed("i18nspector", "traceback: boom", stderrors.New("exit status 2"))
	assert.Contains(t, err.Error(), "traceback: boom")
	assert.Equal(t, "traceback: boom", err.Details["stderr"])
	assert.False(t, IsFatal(err))
}
