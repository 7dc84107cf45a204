package api

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"boscoin.io/sebak-gov/lib/api/resource"
	"boscoin.io/sebak-gov/lib/common/keypair"
	"boscoin.io/sebak-gov/lib/registry"
)

func newTestRegistry() registry.Registry {
	return registry.NewStaticRegistry(
		registry.Member{ID: 1, Kind: registry.MemberNational, Name: "national", PassThreshold: 2, Weight: 19},
		registry.Member{ID: 2, Kind: registry.MemberRegional, Name: "regional", PassThreshold: 1, Weight: 1},
	)
}

func records(body map[string]interface{}) []interface{} {
	embedded := body["_embedded"].(map[string]interface{})
	return embedded["records"].([]interface{})
}

func TestGetProposalHandler(t *testing.T) {
	ts, engine, _, st := prepareAPIServer(newTestRegistry(), 20)
	defer st.Close()
	defer ts.Close()

	p, err := engine.CreateInternalProposal(1)
	require.NoError(t, err)

	path := strings.Replace(resource.URLProposal, "{id}", "1", -1)
	status, body := request(ts, path)
	require.Equal(t, 200, status)
	require.Equal(t, float64(p.ID), body["id"])
	require.Equal(t, "internal", body["kind"])
	require.Equal(t, "voting", body["status"])
	require.Equal(t, float64(1), body["internal_org"])
	require.Equal(t, p.Hash(), body["hash"])

	links := body["_links"].(map[string]interface{})
	require.Equal(t, path, links["self"].(map[string]interface{})["href"])

	{ // not found
		status, body := request(ts, strings.Replace(resource.URLProposal, "{id}", "100", -1))
		require.Equal(t, 404, status)
		require.Equal(t, "proposal not found", body["title"])
	}

	{ // not a number
		status, _ := request(ts, strings.Replace(resource.URLProposal, "{id}", "findme", -1))
		require.Equal(t, 404, status)
	}
}

func TestGetProposalsHandler(t *testing.T) {
	ts, engine, _, st := prepareAPIServer(newTestRegistry(), 20)
	defer st.Close()
	defer ts.Close()

	for i := 0; i < 5; i++ {
		_, err := engine.CreateJointProposal()
		require.NoError(t, err)
	}

	status, body := request(ts, resource.URLProposals+"?limit=2")
	require.Equal(t, 200, status)

	rs := records(body)
	require.Equal(t, 2, len(rs))
	require.Equal(t, float64(1), rs[0].(map[string]interface{})["id"])
	require.Equal(t, float64(2), rs[1].(map[string]interface{})["id"])

	next := body["_links"].(map[string]interface{})["next"].(map[string]interface{})["href"].(string)
	require.Contains(t, next, "cursor=3")

	status, body = request(ts, next)
	require.Equal(t, 200, status)
	rs = records(body)
	require.Equal(t, 2, len(rs))
	require.Equal(t, float64(3), rs[0].(map[string]interface{})["id"])

	{ // reverse
		_, body := request(ts, resource.URLProposals+"?reverse=true")
		rs := records(body)
		require.Equal(t, 5, len(rs))
		require.Equal(t, float64(5), rs[0].(map[string]interface{})["id"])
	}

	{ // bad query
		status, _ := request(ts, resource.URLProposals+"?limit=findme")
		require.Equal(t, 400, status)
	}
}

func TestGetProposalTallyAndVotesHandler(t *testing.T) {
	ts, engine, _, st := prepareAPIServer(newTestRegistry(), 20)
	defer st.Close()
	defer ts.Close()

	p, _ := engine.CreateJointProposal()
	_, err := engine.SubmitJointInstitutionVote(p.ID, 1, true)
	require.NoError(t, err)

	tallyPath := strings.Replace(resource.URLProposalTally, "{id}", fmt.Sprintf("%d", p.ID), -1)
	status, body := request(ts, strings.Replace(tallyPath, "{stage}", "joint", -1))
	require.Equal(t, 200, status)
	require.Equal(t, float64(19), body["yes"])
	require.Equal(t, float64(0), body["no"])

	{ // unknown stage
		status, _ := request(ts, strings.Replace(tallyPath, "{stage}", "findme", -1))
		require.Equal(t, 400, status)
	}

	votesPath := strings.Replace(resource.URLProposalVotes, "{id}", fmt.Sprintf("%d", p.ID), -1)
	status, body = request(ts, strings.Replace(votesPath, "{stage}", "joint", -1))
	require.Equal(t, 200, status)

	rs := records(body)
	require.Equal(t, 1, len(rs))
	require.Equal(t, "1", rs[0].(map[string]interface{})["voter"])
	require.Equal(t, true, rs[0].(map[string]interface{})["approve"])
}

func TestGetCitizensHandler(t *testing.T) {
	ts, _, roll, st := prepareAPIServer(newTestRegistry(), 20)
	defer st.Close()
	defer ts.Close()

	var addresses []string
	for i := 0; i < 3; i++ {
		address := keypair.Random().Address()
		_, err := roll.Register(address, 1)
		require.NoError(t, err)
		addresses = append(addresses, address)
	}

	status, body := request(ts, resource.URLCitizens+"?limit=2")
	require.Equal(t, 200, status)
	rs := records(body)
	require.Equal(t, 2, len(rs))
	require.Equal(t, addresses[0], rs[0].(map[string]interface{})["address"])

	next := body["_links"].(map[string]interface{})["next"].(map[string]interface{})["href"].(string)
	_, body = request(ts, next)
	rs = records(body)
	require.Equal(t, 1, len(rs))
	require.Equal(t, addresses[2], rs[0].(map[string]interface{})["address"])

	status, body = request(ts, strings.Replace(resource.URLCitizen, "{id}", addresses[1], -1))
	require.Equal(t, 200, status)
	require.Equal(t, float64(2), body["sequence"])

	status, _ = request(ts, strings.Replace(resource.URLCitizen, "{id}", keypair.Random().Address(), -1))
	require.Equal(t, 404, status)
}

func TestGetMembersHandler(t *testing.T) {
	ts, _, _, st := prepareAPIServer(newTestRegistry(), 20)
	defer st.Close()
	defer ts.Close()

	status, body := request(ts, resource.URLMembers)
	require.Equal(t, 200, status)

	rs := records(body)
	require.Equal(t, 2, len(rs))
	require.Equal(t, float64(19), rs[0].(map[string]interface{})["weight"])
	require.Equal(t, "regional", rs[1].(map[string]interface{})["kind"])
}
