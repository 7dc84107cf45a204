package observer

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTriggerProposal(t *testing.T) {
	var wg sync.WaitGroup
	wg.Add(2)

	var mu sync.Mutex
	var received []string
	byType := func(args ...interface{}) {
		mu.Lock()
		received = append(received, "type:"+args[0].(string))
		mu.Unlock()
		wg.Done()
	}
	byProposal := func(args ...interface{}) {
		mu.Lock()
		received = append(received, "proposal:"+args[0].(string))
		mu.Unlock()
		wg.Done()
	}

	ProposalObserver.On("test-event", byType)
	defer ProposalObserver.Off("test-event", byType)
	ProposalObserver.On(ProposalEventName(99), byProposal)
	defer ProposalObserver.Off(ProposalEventName(99), byProposal)

	TriggerProposal("test-event", 99, "findme")

	wg.Wait()

	require.ElementsMatch(t, []string{"type:findme", "proposal:findme"}, received)
}
