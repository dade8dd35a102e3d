package ghx

import "fmt"

// WarningCode identifies a non-fatal sizing diagnostic.
type WarningCode string

const (
	// WarningUserOverrideRisk: both the hole count and the depth were fixed by
	// the user, so the self-correcting search was bypassed.
	WarningUserOverrideRisk WarningCode = "user_override_risk"

	// WarningConfigurationCapped: the hole count was reduced to the maximum of
	// the requested configuration.
	WarningConfigurationCapped WarningCode = "configuration_capped"

	// WarningConfigurationSubstituted: the requested configuration does not
	// accept the hole count and another one was adopted.
	WarningConfigurationSubstituted WarningCode = "configuration_substituted"
)

// Warning is a diagnostic that does not abort sizing.
type Warning struct {
	Code    WarningCode `json:"code"`
	Message string      `json:"message"`
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Code, w.Message)
}

func newWarning(code WarningCode, format string, args ...interface{}) Warning {
	return Warning{Code: code, Message: fmt.Sprintf(format, args...)}
}
