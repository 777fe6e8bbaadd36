package failure

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestGetCode(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, GetCode(BadRequest(errors.New("bad body"))))
	assert.Equal(t, http.StatusUnprocessableEntity, GetCode(Validation([]string{"name is required"})))
	assert.Equal(t, http.StatusNotFound, GetCode(NotFound("venue")))
	assert.Equal(t, http.StatusInternalServerError, GetCode(InternalError(errors.New("boom"))))

	// unknown errors map to 500
	assert.Equal(t, http.StatusInternalServerError, GetCode(errors.New("plain")))
}

func TestGetFields(t *testing.T) {
	fields := []string{"name is required", "amount must be greater than or equal to 0"}
	assert.Equal(t, fields, GetFields(Validation(fields)))
	assert.Nil(t, GetFields(errors.New("plain")))
}

func TestNilErrorsPassThrough(t *testing.T) {
	assert.NoError(t, BadRequest(nil))
	assert.NoError(t, InternalError(nil))
}
