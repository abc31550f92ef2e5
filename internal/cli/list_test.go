package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vvka-141/gnafload/pkg/gnafload"
)

func TestRunList_PrintsDatasets(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "VIC_LOCALITY_psv.psv"), []byte("A|B\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "suburbs.csv"), []byte("a,b\n"), 0644))

	var out bytes.Buffer
	listCmd.SetOut(&out)
	defer listCmd.SetOut(nil)

	require.NoError(t, runList(listCmd, []string{dir}))

	text := out.String()
	assert.Contains(t, text, "gnaf_vic_locality")
	assert.Contains(t, text, "gnaf_suburbs")
	assert.Contains(t, text, "gnaf ")
	assert.Contains(t, text, "boundary")
}

func TestRunList_EmptyDir(t *testing.T) {
	err := runList(listCmd, []string{t.TempDir()})
	require.Error(t, err)
	assert.ErrorIs(t, err, gnafload.ErrNoDatasets)
}

func TestRunList_MalformedYaml(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "gnafload.yaml"), []byte("{{invalid"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "VIC_LOCALITY_psv.psv"), []byte("A|B\n"), 0644))

	err := runList(listCmd, []string{dir})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gnafload.yaml")
}

func TestRunList_TablePrefixFlag(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "NSW_LOCALITY_psv.psv"), []byte("A|B\n"), 0644))

	saved := listFlags
	defer func() { listFlags = saved }()
	listFlags.tablePrefix = "addr_"

	var out bytes.Buffer
	listCmd.SetOut(&out)
	defer listCmd.SetOut(nil)

	require.NoError(t, runList(listCmd, []string{dir}))
	assert.Contains(t, out.String(), "addr_nsw_locality")
}
