package species

import (
	"fmt"

	"github.com/CodexForgeBR/pidext/internal/trackpid"
)

// baseIDs lists the base-range identifiers next to the track PID index each
// one must equal.
var baseIDs = []struct {
	id    ID
	track trackpid.ID
}{
	{Electron, trackpid.Electron},
	{Muon, trackpid.Muon},
	{Pion, trackpid.Pion},
	{Kaon, trackpid.Kaon},
	{Proton, trackpid.Proton},
	{Deuteron, trackpid.Deuteron},
	{Triton, trackpid.Triton},
	{Helium3, trackpid.Helium3},
	{Alpha, trackpid.Alpha},
	{PI0, trackpid.PI0},
	{Photon, trackpid.Photon},
	{K0, trackpid.K0},
	{Lambda, trackpid.Lambda},
	{HyperTriton, trackpid.HyperTriton},
	{Hyperhydrog4, trackpid.Hyperhydrog4},
	{XiMinus, trackpid.XiMinus},
	{OmegaMinus, trackpid.OmegaMinus},
}

// extensionNames names every identifier past the base range. Base names come
// from the track PID catalog.
var extensionNames = map[ID]string{
	Positron:         "Positron",
	MuonPlus:         "MuonPlus",
	PionMinus:        "PionMinus",
	KaonMinus:        "KaonMinus",
	AntiProton:       "AntiProton",
	AntiDeuteron:     "AntiDeuteron",
	AntiTriton:       "AntiTriton",
	AntiHelium3:      "AntiHelium3",
	AntiAlpha:        "AntiAlpha",
	AntiLambda:       "AntiLambda",
	AntiHyperTriton:  "AntiHyperTriton",
	AntiHyperhydrog4: "AntiHyperhydrog4",
	XiPlus:           "XiPlus",
	OmegaPlus:        "OmegaPlus",
	Neutron:          "Neutron",
	AntiNeutron:      "AntiNeutron",
	HyperHelium4:     "HyperHelium4",
	AntiHyperHelium4: "AntiHyperHelium4",
	Phi:              "Phi",
	BZero:            "BZero",
	BPlus:            "BPlus",
	BS:               "BS",
	D0:               "D0",
	DPlus:            "DPlus",
	DS:               "DS",
	DStar:            "DStar",
	ChiC1:            "ChiC1",
	JPsi:             "JPsi",
	LambdaB0:         "LambdaB0",
	LambdaCPlus:      "LambdaCPlus",
	OmegaC0:          "OmegaC0",
	SigmaC0:          "SigmaC0",
	SigmaCPlusPlus:   "SigmaCPlusPlus",
	X3872:            "X3872",
	Xi0:              "Xi0",
	XiB0:             "XiB0",
	XiCCPlusPlus:     "XiCCPlusPlus",
	XiCPlus:          "XiCPlus",
	XiC0:             "XiC0",
}

// names is indexed by ID and has exactly NIDsTot entries.
var names []string

// byName is the inverse of names.
var byName map[string]ID

func init() {
	if err := checkCatalog(trackpid.NIDsTot, trackpid.Names[:]); err != nil {
		panic(err)
	}

	var err error
	names, err = buildNames(trackpid.Names[:], extensionNames)
	if err != nil {
		panic(err)
	}

	byName = make(map[string]ID, len(names))
	for i, n := range names {
		byName[n] = ID(i)
	}
}

// checkCatalog verifies that the base range agrees with a track PID catalog
// of the given size and name table.
func checkCatalog(count trackpid.ID, trackNames []string) error {
	if ID(count) != PIDCounts {
		return fmt.Errorf("track PID catalog has %d indices, base range has %d", count, PIDCounts)
	}
	if len(trackNames) != int(count) {
		return fmt.Errorf("track PID catalog has %d names for %d indices", len(trackNames), count)
	}
	if len(baseIDs) != int(PIDCounts) {
		return fmt.Errorf("base range lists %d identifiers, want %d", len(baseIDs), PIDCounts)
	}
	for i, b := range baseIDs {
		if b.id != ID(b.track) || b.id != ID(i) {
			return fmt.Errorf("base identifier %d does not match track PID index %d", b.id, b.track)
		}
		if trackNames[i] == "" {
			return fmt.Errorf("track PID index %d has no name", i)
		}
	}
	return nil
}

// buildNames lays out the name table and checks that every identifier in
// [0, NIDsTot) has a unique, non-empty name.
func buildNames(base []string, ext map[ID]string) ([]string, error) {
	out := make([]string, NIDsTot)
	copy(out, base)
	for id, n := range ext {
		if id < PIDCounts || id >= NIDsTot {
			return nil, fmt.Errorf("extension name %q for identifier %d outside [%d, %d)", n, id, PIDCounts, NIDsTot)
		}
		out[id] = n
	}

	seen := make(map[string]ID, len(out))
	for i, n := range out {
		if n == "" {
			return nil, fmt.Errorf("identifier %d has no name", i)
		}
		if prev, ok := seen[n]; ok {
			return nil, fmt.Errorf("name %q used by identifiers %d and %d", n, prev, i)
		}
		seen[n] = ID(i)
	}
	return out, nil
}

// Name returns the display name of id. Identifiers outside [0, NIDsTot)
// yield an error wrapping ErrIDOutOfRange.
func Name(id ID) (string, error) {
	if !Valid(id) {
		return "", fmt.Errorf("%w: %d not in [0, %d)", ErrIDOutOfRange, id, NIDsTot)
	}
	return names[id], nil
}

// Names returns all display names in identifier order. The result is a
// fresh copy.
func Names() []string {
	out := make([]string, len(names))
	copy(out, names)
	return out
}

// Table returns the name table in its positional layout: NIDsTot names
// followed by an empty end-of-table sentinel.
func Table() []string {
	out := make([]string, len(names)+1)
	copy(out, names)
	return out
}

// ParseName returns the identifier whose display name is name.
func ParseName(name string) (ID, error) {
	id, ok := byName[name]
	if !ok {
		return NotFound, fmt.Errorf("%w: %q", ErrUnknownName, name)
	}
	return id, nil
}
