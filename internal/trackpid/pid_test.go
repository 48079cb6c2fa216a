package trackpid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/CodexForgeBR/pidext/internal/trackpid"
)

func TestIndicesAreContiguous(t *testing.T) {
	ids := []trackpid.ID{
		trackpid.Electron, trackpid.Muon, trackpid.Pion, trackpid.Kaon,
		trackpid.Proton, trackpid.Deuteron, trackpid.Triton, trackpid.Helium3,
		trackpid.Alpha, trackpid.PI0, trackpid.Photon, trackpid.K0,
		trackpid.Lambda, trackpid.HyperTriton, trackpid.Hyperhydrog4,
		trackpid.XiMinus, trackpid.OmegaMinus,
	}
	assert.Len(t, ids, int(trackpid.NIDsTot))
	for i, id := range ids {
		assert.Equal(t, trackpid.ID(i), id)
	}
}

func TestNamesAreSetAndUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i, name := range trackpid.Names {
		assert.NotEmpty(t, name, "index %d has no name", i)
		assert.False(t, seen[name], "duplicate name %q", name)
		seen[name] = true
	}
}
