package locmap_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/locmap"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := locmap.Errorf(locmap.ENOTFOUND, "site %q not found", "main")

	assert.Equal(t, locmap.ENOTFOUND, locmap.ErrorCode(err))
	assert.Equal(t, "site \"main\" not found", locmap.ErrorMessage(err))
}

func TestErrorCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		code string
	}{
		{"nil", nil, ""},
		{"plain error", errors.New("boom"), locmap.EINTERNAL},
		{"wrapped application error", fmt.Errorf("wrap: %w", locmap.Errorf(locmap.ECONFLICT, "x")), locmap.ECONFLICT},
		{"base URL not supported", &locmap.BaseURLNotSupportedError{URL: "/"}, locmap.EINVALID},
		{"sitemap missing", &locmap.SitemapMissingError{Site: "main"}, locmap.ENOTFOUND},
		{"provider not supported", &locmap.ProviderNotSupportedError{Name: "foo"}, locmap.EINVALID},
		{"provider invalid", &locmap.ProviderInvalidError{Index: 2}, locmap.EINVALID},
		{"wrapped typed error", fmt.Errorf("locate: %w", &locmap.SitemapMissingError{Site: "main"}), locmap.ENOTFOUND},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.code, locmap.ErrorCode(tt.err))
		})
	}
}

func TestErrorMessage(t *testing.T) {
	t.Parallel()

	t.Run("nil error", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, locmap.ErrorMessage(nil))
	})

	t.Run("hides internal errors", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Internal error", locmap.ErrorMessage(errors.New("dial tcp: refused")))
	})

	t.Run("typed errors expose their message", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, `the given base URL "/" is not supported`, locmap.ErrorMessage(&locmap.BaseURLNotSupportedError{URL: "/"}))
		assert.Equal(t, `no XML sitemap could be located for site "main"`, locmap.ErrorMessage(&locmap.SitemapMissingError{Site: "main"}))
		assert.Equal(t, `the given provider "foo" is not supported`, locmap.ErrorMessage(&locmap.ProviderNotSupportedError{Name: "foo"}))
		assert.Equal(t, "provider at index 2 does not implement locmap.Provider", locmap.ErrorMessage(&locmap.ProviderInvalidError{Index: 2}))
	})
}
