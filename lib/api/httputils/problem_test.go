package httputils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"boscoin.io/sebak-gov/lib/common"
	"boscoin.io/sebak-gov/lib/errors"
)

func TestWriteJSONError(t *testing.T) {
	w := httptest.NewRecorder()
	WriteJSONError(w, errors.AlreadyVoted.Clone().SetData("voter", "findme"))

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "application/problem+json", w.Header().Get("Content-Type"))

	var p Problem
	common.MustUnmarshalJSON(w.Body.Bytes(), &p)
	require.Equal(t, ProblemTypePrefix+"104", p.Type)
	require.Equal(t, errors.AlreadyVoted.Message, p.Title)
	require.Equal(t, http.StatusBadRequest, p.Status)
	require.Equal(t, "findme", p.Data["voter"])
}

func TestStatusCode(t *testing.T) {
	require.Equal(t, http.StatusNotFound, StatusCode(errors.ProposalNotFound))
	require.Equal(t, http.StatusBadRequest, StatusCode(errors.InvalidStage.Clone()))
	require.Equal(t, http.StatusInternalServerError, StatusCode(errors.StorageCoreError))
	require.Equal(t, http.StatusInternalServerError, StatusCode(http.ErrHandlerTimeout))
}

func TestWriteJSONProblem(t *testing.T) {
	w := httptest.NewRecorder()
	MustWriteJSON(w, http.StatusBadRequest, NewDetailedStatusProblem(http.StatusBadRequest, "showme"))

	require.Equal(t, "application/problem+json", w.Header().Get("Content-Type"))

	var p Problem
	common.MustUnmarshalJSON(w.Body.Bytes(), &p)
	require.Equal(t, "about:blank", p.Type)
	require.Equal(t, "showme", p.Detail)
}
