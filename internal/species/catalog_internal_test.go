package species

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CodexForgeBR/pidext/internal/trackpid"
)

func TestCheckCatalog_Matches(t *testing.T) {
	assert.NoError(t, checkCatalog(trackpid.NIDsTot, trackpid.Names[:]))
}

func TestCheckCatalog_CountMismatch(t *testing.T) {
	err := checkCatalog(trackpid.NIDsTot+1, append(trackpid.Names[:], "Extra"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "indices")
}

func TestCheckCatalog_NameCountMismatch(t *testing.T) {
	err := checkCatalog(trackpid.NIDsTot, trackpid.Names[:trackpid.NIDsTot-1])
	require.Error(t, err)
	assert.Contains(t, err.Error(), "names")
}

func TestCheckCatalog_EmptyName(t *testing.T) {
	tn := append([]string(nil), trackpid.Names[:]...)
	tn[Alpha] = ""
	err := checkCatalog(trackpid.NIDsTot, tn)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no name")
}

func TestCheckCatalog_IdentifierMismatch(t *testing.T) {
	saved := baseIDs
	defer func() { baseIDs = saved }()

	baseIDs = append(baseIDs[:0:0], saved...)
	baseIDs[Lambda].track = trackpid.HyperTriton

	err := checkCatalog(trackpid.NIDsTot, trackpid.Names[:])
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not match")
}

func TestBuildNames(t *testing.T) {
	out, err := buildNames(trackpid.Names[:], extensionNames)
	require.NoError(t, err)
	assert.Len(t, out, int(NIDsTot))
	assert.Equal(t, names, out)
}

func TestBuildNames_MissingEntry(t *testing.T) {
	ext := copyExt()
	delete(ext, DStar)

	_, err := buildNames(trackpid.Names[:], ext)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "identifier 42 has no name")
}

func TestBuildNames_Duplicate(t *testing.T) {
	ext := copyExt()
	ext[XiC0] = "XiCPlus"

	_, err := buildNames(trackpid.Names[:], ext)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "XiCPlus")
}

func TestBuildNames_OutsideExtensionRange(t *testing.T) {
	for _, id := range []ID{Proton, NIDsTot} {
		ext := copyExt()
		ext[id] = "Bogus"

		_, err := buildNames(trackpid.Names[:], ext)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "outside")
	}
}

func TestBuildCodes_CoversEveryIdentifier(t *testing.T) {
	byCode, byID, err := buildCodes()
	require.NoError(t, err)
	assert.Len(t, byCode, len(codeTable))
	assert.Len(t, byID, int(NIDsTot))
	assert.Len(t, codeTable, int(NIDsTot))

	for _, e := range codeTable {
		assert.Equal(t, e.id, byCode[e.code])
		assert.Equal(t, e.code, byID[e.id])
	}
}

func TestBuildCodes_RejectsDuplicates(t *testing.T) {
	saved := codeTable
	defer func() { codeTable = saved }()

	codeTable = append(codeTable[:0:0], saved...)
	codeTable = append(codeTable, codeTable[0])

	_, _, err := buildCodes()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mapped twice")

	codeTable = append(saved[:0:0], saved...)
	codeTable[1].id = Electron

	_, _, err = buildCodes()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "more than one PDG code")
}

func TestBuildCodes_RejectsInvalidIdentifier(t *testing.T) {
	saved := codeTable
	defer func() { codeTable = saved }()

	codeTable = append(saved[:0:0], saved...)
	codeTable[0].id = NIDsTot

	_, _, err := buildCodes()
	assert.ErrorIs(t, err, ErrIDOutOfRange)
}

func copyExt() map[ID]string {
	ext := make(map[ID]string, len(extensionNames))
	for k, v := range extensionNames {
		ext[k] = v
	}
	return ext
}
