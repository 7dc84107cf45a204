package storage

import (
	"fmt"
	"io/ioutil"
	"testing"

	"github.com/stretchr/testify/require"

	"boscoin.io/sebak-gov/lib/common"
	"boscoin.io/sebak-gov/lib/errors"
)

func TestLevelDBBackendInitFileStorage(t *testing.T) {
	path, _ := ioutil.TempDir("/tmp", "sebak-gov")
	defer CleanDB(path)

	config, err := NewConfigFromString("file://" + path)
	require.NoError(t, err)

	st, err := NewStorage(config)
	require.NoError(t, err)
	defer st.Close()

	require.NoError(t, st.New("showme", 1))
}

func TestLevelDBBackendInitMemStorage(t *testing.T) {
	config, err := NewConfigFromString("memory://")
	require.NoError(t, err)

	st, err := NewStorage(config)
	require.NoError(t, err)
	defer st.Close()
}

func TestLevelDBBackendNew(t *testing.T) {
	st, _ := NewTestMemoryLevelDBBackend()
	defer st.Close()

	key := "showme"
	input := map[int]string{
		90: "99",
		91: "91",
		92: "92",
	}
	require.NoError(t, st.New(key, input))

	fetched := map[int]string{}
	require.NoError(t, st.Get(key, &fetched))
	require.Equal(t, input, fetched)

	// 'New' only for new key
	require.Equal(t, errors.StorageRecordAlreadyExists, st.New(key, input))
}

func TestLevelDBBackendHas(t *testing.T) {
	st, _ := NewTestMemoryLevelDBBackend()
	defer st.Close()

	key := "showme"
	exists, err := st.Has(key)
	require.NoError(t, err)
	require.False(t, exists)

	require.NoError(t, st.New(key, 10))

	exists, _ = st.Has(key)
	require.True(t, exists)

	require.NoError(t, st.Remove(key))
	exists, _ = st.Has(key)
	require.False(t, exists)
}

func TestLevelDBBackendGetRaw(t *testing.T) {
	st, _ := NewTestMemoryLevelDBBackend()
	defer st.Close()

	st.New("showme", "input")

	_, err := st.GetRaw("vacuum")
	require.Equal(t, errors.StorageRecordDoesNotExist, err)

	b, err := st.GetRaw("showme")
	require.NoError(t, err)
	require.Equal(t, `"input"`, string(b))
}

func TestLevelDBBackendSet(t *testing.T) {
	st, _ := NewTestMemoryLevelDBBackend()
	defer st.Close()

	key := "showme"

	// 'Set' only for existing key
	require.Equal(t, errors.StorageRecordDoesNotExist, st.Set(key, 20))

	require.NoError(t, st.New(key, 20))
	require.NoError(t, st.Set(key, 30))

	var fetched int
	require.NoError(t, st.Get(key, &fetched))
	require.Equal(t, 30, fetched)
}

func TestLevelDBBackendRemove(t *testing.T) {
	st, _ := NewTestMemoryLevelDBBackend()
	defer st.Close()

	require.Equal(t, errors.StorageRecordDoesNotExist, st.Remove("vacuum"))
}

func makeIteratorKeys(st *LevelDBBackend, total int) (keys []string) {
	for i := 0; i < total; i++ {
		key := fmt.Sprintf("%03d", i)
		st.New(key, i)
		keys = append(keys, key)
	}

	return
}

func collectIterator(st *LevelDBBackend, prefix string, options ListOptions) (collected []string) {
	it, closeFunc := st.GetIterator(prefix, options)
	defer closeFunc()

	for {
		v, hasNext := it()
		if !hasNext {
			break
		}

		collected = append(collected, string(v.Key))
	}

	return
}

func TestLevelDBIterator(t *testing.T) {
	st, _ := NewTestMemoryLevelDBBackend()
	defer st.Close()

	expected := makeIteratorKeys(st, 300)

	require.Equal(t, expected, collectIterator(st, "", NewDefaultListOptions(false, nil, 0)))
	require.Equal(t, expected, collectIterator(st, "", nil))
}

func TestLevelDBIteratorPrefix(t *testing.T) {
	st, _ := NewTestMemoryLevelDBBackend()
	defer st.Close()

	makeIteratorKeys(st, 300)
	st.New("other-1", 1)

	collected := collectIterator(st, "01", nil)
	require.Equal(t, 10, len(collected))
	require.Equal(t, "010", collected[0])
	require.Equal(t, "019", collected[9])
}

func TestLevelDBIteratorSeek(t *testing.T) {
	st, _ := NewTestMemoryLevelDBBackend()
	defer st.Close()

	expected := makeIteratorKeys(st, 300)

	collected := collectIterator(st, "", NewDefaultListOptions(false, []byte("100"), 0))
	require.Equal(t, expected[100:], collected)
}

func TestLevelDBIteratorLimit(t *testing.T) {
	st, _ := NewTestMemoryLevelDBBackend()
	defer st.Close()

	expected := makeIteratorKeys(st, 300)

	collected := collectIterator(st, "", NewDefaultListOptions(false, nil, 100))
	require.Equal(t, expected[:100], collected)
}

func TestLevelDBIteratorReverseOrder(t *testing.T) {
	st, _ := NewTestMemoryLevelDBBackend()
	defer st.Close()

	expected := makeIteratorKeys(st, 30)

	collected := collectIterator(st, "", NewDefaultListOptions(true, nil, 0))
	require.Equal(t, len(expected), len(collected))
	for i, a := range expected {
		require.Equal(t, a, collected[len(collected)-1-i], "failed to reverse `GetIterator`")
	}

	{ // with cursor
		collected := collectIterator(st, "", NewDefaultListOptions(true, []byte("010"), 3))
		require.Equal(t, []string{"010", "009", "008"}, collected)
	}

	{ // with cursor, which does not exist
		collected := collectIterator(st, "", NewDefaultListOptions(true, []byte("0105"), 2))
		require.Equal(t, []string{"010", "009"}, collected)
	}
}

func TestLevelDBBackendTransactionNew(t *testing.T) {
	st, _ := NewTestMemoryLevelDBBackend()
	defer st.Close()

	ts, err := st.OpenTransaction()
	require.NoError(t, err)
	require.True(t, ts.IsTransaction())

	_, err = ts.OpenTransaction()
	require.Error(t, err)

	key0 := common.GetUniqueIDFromUUID()
	value0 := "findme"
	require.NoError(t, ts.New(key0, value0))

	var returned string
	require.NoError(t, ts.Get(key0, &returned))
	require.Equal(t, value0, returned)

	require.NoError(t, ts.Commit())

	var returnedAgain string
	require.NoError(t, st.Get(key0, &returnedAgain))
	require.Equal(t, value0, returnedAgain)
}

func TestLevelDBBackendTransactionDiscard(t *testing.T) {
	st, _ := NewTestMemoryLevelDBBackend()
	defer st.Close()

	ts, _ := st.OpenTransaction()

	key0 := common.GetUniqueIDFromUUID()
	require.NoError(t, ts.New(key0, "findme"))
	require.NoError(t, ts.Discard())

	var returned string
	require.Equal(t, errors.StorageRecordDoesNotExist, st.Get(key0, &returned))

	require.Error(t, st.Commit(), "not transaction")
}
