package validators

import (
	"net/http"
	"solidusers/cmd/internal/utils/apierror"
	"testing"

	"github.com/stretchr/testify/require"
)

type sample struct {
	Name string `validate:"required,notblank"`
}

func TestNotBlank(t *testing.T) {
	validate := New()

	require.NoError(t, validate.Struct(&sample{Name: "Diego"}))

	err := validate.Struct(&sample{Name: " \t "})
	require.Error(t, err)

	apierr := apierror.FromValidationError(err)
	require.NotNil(t, apierr)
	require.Equal(t, http.StatusBadRequest, apierr.Code())
	require.Equal(t, "Field 'name' is required", apierr.Message)
}

func TestFromValidationError_NonValidationError(t *testing.T) {
	require.Nil(t, apierror.FromValidationError(http.ErrBodyNotAllowed))
}
