// Package trackpid mirrors the track particle-identification catalog used by
// the reconstruction data formats.
//
// Its indices are the base of the extended identifier space in package
// species, which asserts at compile time that both agree.
package trackpid

// ID is a track PID index.
type ID = int16

// Track PID indices.
const (
	Electron     ID = 0
	Muon         ID = 1
	Pion         ID = 2
	Kaon         ID = 3
	Proton       ID = 4
	Deuteron     ID = 5
	Triton       ID = 6
	Helium3      ID = 7
	Alpha        ID = 8
	PI0          ID = 9
	Photon       ID = 10
	K0           ID = 11
	Lambda       ID = 12
	HyperTriton  ID = 13
	Hyperhydrog4 ID = 14
	XiMinus      ID = 15
	OmegaMinus   ID = 16

	NIDsTot ID = 17 // number of indices in the catalog
)

// Names holds the display name of each index.
var Names = [NIDsTot]string{
	"Electron",
	"Muon",
	"Pion",
	"Kaon",
	"Proton",
	"Deuteron",
	"Triton",
	"He3",
	"Alpha",
	"Pion0",
	"Photon",
	"K0",
	"Lambda",
	"HyperTriton",
	"Hyperhydrog4",
	"XiMinus",
	"OmegaMinus",
}
