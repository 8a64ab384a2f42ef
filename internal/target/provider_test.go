package target

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	addrA = "0x1111111111111111111111111111111111111111"
	addrB = "0x2222222222222222222222222222222222222222"
	addrC = "0xdAC17F958D2ee523a2206206994597C13D831ec7"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestIsAddress(t *testing.T) {
	assert.True(t, IsAddress(addrA))
	assert.True(t, IsAddress(addrC))
	assert.False(t, IsAddress("0x1111"))                                          // too short
	assert.False(t, IsAddress("1111111111111111111111111111111111111111"))        // no prefix
	assert.False(t, IsAddress("0xzz11111111111111111111111111111111111111"))      // not hex
	assert.False(t, IsAddress("0x11111111111111111111111111111111111111112222")) // too long
	assert.False(t, IsAddress("targets.txt"))
}

func TestResolveDirectAddresses(t *testing.T) {
	got, err := Resolve([]string{addrA, addrB})
	require.NoError(t, err)
	assert.Equal(t, []string{addrA, addrB}, got)
}

func TestResolveDeduplicatesCaseInsensitive(t *testing.T) {
	lower := "0xdac17f958d2ee523a2206206994597c13d831ec7"
	got, err := Resolve([]string{addrC, lower, addrA})
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestResolveEmptyFails(t *testing.T) {
	_, err := Resolve(nil)
	assert.Error(t, err)

	_, err = Resolve([]string{"", "   "})
	assert.Error(t, err)
}

func TestResolveMissingFileFails(t *testing.T) {
	_, err := Resolve([]string{"does-not-exist.txt"})
	assert.Error(t, err)
}

func TestReadAddressFileTxt(t *testing.T) {
	path := writeTemp(t, "targets.txt", `
# watchlist
`+addrA+`
// a comment
`+addrB+`, `+addrC+`

`+addrA+`
`)
	got, err := ReadAddressFile(path)
	require.NoError(t, err)
	// Only the first field of a comma/space line is taken; duplicates drop.
	assert.Equal(t, []string{addrA, addrB}, got)
}

func TestReadAddressFileTxtNoValidAddresses(t *testing.T) {
	path := writeTemp(t, "targets.txt", "# nothing here\nnot-an-address\n")
	_, err := ReadAddressFile(path)
	assert.Error(t, err)
}

func TestReadAddressFileYamlList(t *testing.T) {
	path := writeTemp(t, "targets.yaml", "- "+addrA+"\n- "+addrB+"\n")
	got, err := ReadAddressFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{addrA, addrB}, got)
}

func TestReadAddressFileYamlTargetsWrapper(t *testing.T) {
	path := writeTemp(t, "targets.yaml", "targets:\n  - "+addrA+"\n  - "+addrB+"\n")
	got, err := ReadAddressFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{addrA, addrB}, got)
}

func TestReadAddressFileYamlAddressesWrapper(t *testing.T) {
	path := writeTemp(t, "targets.yml", "addresses:\n  - "+addrC+"\n")
	got, err := ReadAddressFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{addrC}, got)
}

func TestReadAddressFileYamlEmpty(t *testing.T) {
	path := writeTemp(t, "targets.yaml", "other_key: true\n")
	_, err := ReadAddressFile(path)
	assert.Error(t, err)
}

func TestResolveMixedAddressAndFile(t *testing.T) {
	path := writeTemp(t, "targets.txt", addrB+"\n")
	got, err := Resolve([]string{addrA, path})
	require.NoError(t, err)
	assert.Equal(t, []string{addrA, addrB}, got)
}
