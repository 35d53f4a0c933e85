package go_payflow

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError indicates that a request is missing required fields or contains invalid data.
type ValidationError struct {
	Fields []FieldError
}

type FieldError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e == nil {
		return describeFields("validation error", nil)
	}
	return describeFields("validation error", e.Fields)
}

func (e *ValidationError) Add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

func (e *ValidationError) HasErrors() bool {
	return e != nil && len(e.Fields) > 0
}

// IsValidationError checks whether err is a *ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// ConfigError is returned by NewClient when credentials are missing or an option is invalid.
type ConfigError struct {
	Fields []FieldError
}

func (e *ConfigError) Error() string {
	if e == nil {
		return describeFields("payflow config error", nil)
	}
	return describeFields("payflow config error", e.Fields)
}

func (e *ConfigError) Add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

func (e *ConfigError) HasErrors() bool {
	return e != nil && len(e.Fields) > 0
}

// IsConfigError checks whether err is a *ConfigError.
func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}

func describeFields(prefix string, fields []FieldError) string {
	switch len(fields) {
	case 0:
		return prefix
	case 1:
		fe := fields[0]
		if fe.Field == "" {
			return fmt.Sprintf("%s: %s", prefix, fe.Message)
		}
		return fmt.Sprintf("%s: %s: %s", prefix, fe.Field, fe.Message)
	default:
		names := make([]string, 0, len(fields))
		for _, fe := range fields {
			names = append(names, fe.Field)
		}
		return fmt.Sprintf("%s: %d fields (%s)", prefix, len(fields), strings.Join(names, ", "))
	}
}

// TransportError means the processor could not be reached or answered with a status >= 300.
//
// StatusCode is 0 when no response was received; Err then holds the cause.
type TransportError struct {
	StatusCode int
	Body       []byte
	Err        error
}

func (e *TransportError) Error() string {
	if e == nil {
		return "payflow transport error"
	}
	if e.StatusCode == 0 {
		if e.Err == nil {
			return "payflow transport error: unable to connect to processor"
		}
		return fmt.Sprintf("payflow transport error: unable to connect to processor: %v", e.Err)
	}
	if len(e.Body) == 0 {
		return fmt.Sprintf("payflow transport error: unable to connect to processor - http code %d", e.StatusCode)
	}
	b := e.Body
	if len(b) > 1024 {
		b = b[:1024]
	}
	return fmt.Sprintf("payflow transport error: unable to connect to processor - http code %d: %s", e.StatusCode, string(b))
}

func (e *TransportError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsTransportError checks whether err is a *TransportError.
func IsTransportError(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// ProtocolError means the processor answered 2xx but an expected field is missing.
//
// Result and RespMsg carry the processor's diagnostics when it sent them.
type ProtocolError struct {
	Field   string
	Result  string
	RespMsg string
}

func (e *ProtocolError) Error() string {
	if e == nil {
		return "payflow protocol error"
	}
	msg := fmt.Sprintf("payflow protocol error: `%s` not returned in response", e.Field)
	if e.RespMsg != "" {
		msg += ": " + e.RespMsg
	}
	if e.Result != "" {
		msg += fmt.Sprintf(" (RESULT=%s)", e.Result)
	}
	return msg
}

// IsProtocolError checks whether err is a *ProtocolError.
func IsProtocolError(err error) bool {
	var pe *ProtocolError
	return errors.As(err, &pe)
}
