package locmap

import (
	"errors"
	"fmt"
)

// Application error codes.
const (
	ECONFLICT = "conflict"
	EINTERNAL = "internal"
	EINVALID  = "invalid"
	ENOTFOUND = "not_found"
)

// Error represents an application-specific error.
type Error struct {
	Code    string
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("locmap error: code=%s message=%s", e.Code, e.Message)
}

// Errorf is a helper function to return an Error with a given code and formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// coder is implemented by the typed errors below so ErrorCode can classify them.
type coder interface {
	ErrorCode() string
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	var c coder
	if errors.As(err, &c) {
		return c.ErrorCode()
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error".
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	var c coder
	if errors.As(err, &c) {
		return err.Error()
	}
	return "Internal error"
}

// BaseURLNotSupportedError is returned when the effective base URL of a site
// or language has no host.
type BaseURLNotSupportedError struct {
	URL string
}

func (e *BaseURLNotSupportedError) Error() string {
	return fmt.Sprintf("the given base URL %q is not supported", e.URL)
}

func (e *BaseURLNotSupportedError) ErrorCode() string { return EINVALID }

// SitemapMissingError is returned when no provider located a sitemap.
type SitemapMissingError struct {
	Site string
}

func (e *SitemapMissingError) Error() string {
	return fmt.Sprintf("no XML sitemap could be located for site %q", e.Site)
}

func (e *SitemapMissingError) ErrorCode() string { return ENOTFOUND }

// ProviderNotSupportedError is returned when a configured provider does not
// resolve to a provider implementation.
type ProviderNotSupportedError struct {
	Name string
}

func (e *ProviderNotSupportedError) Error() string {
	return fmt.Sprintf("the given provider %q is not supported", e.Name)
}

func (e *ProviderNotSupportedError) ErrorCode() string { return EINVALID }

// ProviderInvalidError is returned when a provider value cannot honor the
// Provider contract, e.g. a nil provider.
type ProviderInvalidError struct {
	Index int
}

func (e *ProviderInvalidError) Error() string {
	return fmt.Sprintf("provider at index %d does not implement locmap.Provider", e.Index)
}

func (e *ProviderInvalidError) ErrorCode() string { return EINVALID }
