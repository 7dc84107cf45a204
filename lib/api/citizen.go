package api

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"boscoin.io/sebak-gov/lib/api/httputils"
	"boscoin.io/sebak-gov/lib/api/resource"
	"boscoin.io/sebak-gov/lib/errors"
	"boscoin.io/sebak-gov/lib/registry"
	"boscoin.io/sebak-gov/lib/storage"
)

func (api GovernanceHandlerAPI) GetCitizensHandler(w http.ResponseWriter, r *http.Request) {
	p, err := httputils.NewPageQuery(r)
	if err != nil {
		httputils.MustWriteJSON(w, http.StatusBadRequest, httputils.NewDetailedStatusProblem(http.StatusBadRequest, err.Error()))
		return
	}

	// the cursor of citizens is the registered sequence
	var options storage.ListOptions = storage.NewDefaultListOptions(p.Reverse(), nil, p.Limit()+1)
	if len(p.Cursor()) > 0 {
		sequence, err := strconv.ParseUint(string(p.Cursor()), 10, 32)
		if err != nil {
			httputils.MustWriteJSON(w, http.StatusBadRequest, httputils.NewDetailedStatusProblem(http.StatusBadRequest, err.Error()))
			return
		}
		options.SetCursor([]byte(registry.GetCitizenRegisteredKey(uint32(sequence))))
	}

	var rs []resource.Resource
	var nextCursor []byte
	{
		iterFunc, closeFunc := api.roll.Citizens(options)
		for {
			citizen, hasNext := iterFunc()
			if !hasNext {
				break
			}
			if uint64(len(rs)) == p.Limit() {
				nextCursor = []byte(strconv.FormatUint(uint64(citizen.Sequence), 10))
				break
			}
			rs = append(rs, resource.NewCitizen(citizen))
		}
		closeFunc()
	}

	var nextLink string
	if nextCursor != nil {
		nextLink = p.NextLink(nextCursor)
	}

	httputils.MustWriteJSON(w, http.StatusOK, resource.NewResourceList(rs, p.SelfLink(), nextLink, ""))
}

func (api GovernanceHandlerAPI) GetCitizenHandler(w http.ResponseWriter, r *http.Request) {
	address := mux.Vars(r)["id"]

	citizen, err := api.roll.Get(address)
	if err != nil {
		if err == errors.StorageRecordDoesNotExist {
			err = errors.NotEligibleCitizen.Clone().SetData("citizen", address)
			httputils.MustWriteJSON(w, http.StatusNotFound, err)
			return
		}
		httputils.WriteJSONError(w, err)
		return
	}

	httputils.MustWriteJSON(w, http.StatusOK, resource.NewCitizen(citizen))
}

func (api GovernanceHandlerAPI) GetMembersHandler(w http.ResponseWriter, r *http.Request) {
	rs := []resource.Resource{}
	for _, m := range api.engine.Registry().Members() {
		rs = append(rs, resource.NewMember(m))
	}

	httputils.MustWriteJSON(w, http.StatusOK, resource.NewResourceList(rs, r.URL.String(), "", ""))
}
