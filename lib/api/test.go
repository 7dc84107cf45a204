package api

import (
	"io/ioutil"
	"net/http"
	"net/http/httptest"

	"boscoin.io/sebak-gov/lib/common"
	"boscoin.io/sebak-gov/lib/governance"
	"boscoin.io/sebak-gov/lib/registry"
	"boscoin.io/sebak-gov/lib/storage"
)

func prepareAPIServer(reg registry.Registry, unanimous uint32) (*httptest.Server, *governance.Engine, *registry.CitizenRoll, *storage.LevelDBBackend) {
	st, err := storage.NewTestMemoryLevelDBBackend()
	if err != nil {
		panic(err)
	}

	roll := registry.NewCitizenRoll(st)
	engine, err := governance.NewEngine(
		st,
		governance.NewTestConfig(unanimous),
		reg,
		roll,
		common.NewManualHeight(1),
		governance.NopSink{},
	)
	if err != nil {
		panic(err)
	}

	apiHandler := NewGovernanceHandlerAPI(engine, roll)
	ts := httptest.NewServer(CORS(apiHandler.Router(nil)))

	return ts, engine, roll, st
}

func request(ts *httptest.Server, path string) (int, map[string]interface{}) {
	resp, err := http.Get(ts.URL + path)
	if err != nil {
		panic(err)
	}
	defer resp.Body.Close()

	b, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		panic(err)
	}

	var body map[string]interface{}
	common.MustUnmarshalJSON(b, &body)

	return resp.StatusCode, body
}
