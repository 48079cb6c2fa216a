// Package species defines the extended particle identifier space used by the
// analysis tasks and resolves PDG Monte Carlo codes into it.
//
// Identifiers 0..PIDCounts-1 coincide with the track PID catalog
// (package trackpid); the remaining identifiers cover antiparticles,
// nucleons, hypernuclei and heavy-flavour states the catalog lacks.
//
// All tables are built once during package initialization and are read-only
// afterwards, so every function here is safe for concurrent use.
package species

import (
	"errors"
	"fmt"

	"github.com/CodexForgeBR/pidext/internal/trackpid"
)

// ID is an extended particle identifier.
type ID int16

// NotFound is the identifier returned alongside false when a code or name
// cannot be resolved. It is never a valid identifier.
const NotFound ID = -1

// Base range, shared with the track PID catalog.
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

	PIDCounts ID = 17 // number of identifiers taken from the track PID catalog
)

// Antiparticles of the base range.
const (
	Positron         ID = 17
	MuonPlus         ID = 18
	PionMinus        ID = 19
	KaonMinus        ID = 20
	AntiProton       ID = 21
	AntiDeuteron     ID = 22
	AntiTriton       ID = 23
	AntiHelium3      ID = 24
	AntiAlpha        ID = 25
	AntiLambda       ID = 26
	AntiHyperTriton  ID = 27
	AntiHyperhydrog4 ID = 28
	XiPlus           ID = 29
	OmegaPlus        ID = 30
)

// Further species.
const (
	Neutron          ID = 31
	AntiNeutron      ID = 32
	HyperHelium4     ID = 33
	AntiHyperHelium4 ID = 34
	Phi              ID = 35

	BZero          ID = 36
	BPlus          ID = 37
	BS             ID = 38
	D0             ID = 39
	DPlus          ID = 40
	DS             ID = 41
	DStar          ID = 42
	ChiC1          ID = 43
	JPsi           ID = 44
	LambdaB0       ID = 45
	LambdaCPlus    ID = 46
	OmegaC0        ID = 47
	SigmaC0        ID = 48
	SigmaCPlusPlus ID = 49
	X3872          ID = 50
	Xi0            ID = 51
	XiB0           ID = 52
	XiCCPlusPlus   ID = 53
	XiCPlus        ID = 54
	XiC0           ID = 55

	NIDsTot ID = 56 // total number of identifiers
)

// The base range must match the track PID catalog. A constant index other
// than zero into a one-element array does not compile, so any divergence
// between the two catalogs breaks the build here.
func _() {
	var x [1]struct{}
	_ = x[Electron-ID(trackpid.Electron)]
	_ = x[Muon-ID(trackpid.Muon)]
	_ = x[Pion-ID(trackpid.Pion)]
	_ = x[Kaon-ID(trackpid.Kaon)]
	_ = x[Proton-ID(trackpid.Proton)]
	_ = x[Deuteron-ID(trackpid.Deuteron)]
	_ = x[Triton-ID(trackpid.Triton)]
	_ = x[Helium3-ID(trackpid.Helium3)]
	_ = x[Alpha-ID(trackpid.Alpha)]
	_ = x[PI0-ID(trackpid.PI0)]
	_ = x[Photon-ID(trackpid.Photon)]
	_ = x[K0-ID(trackpid.K0)]
	_ = x[Lambda-ID(trackpid.Lambda)]
	_ = x[HyperTriton-ID(trackpid.HyperTriton)]
	_ = x[Hyperhydrog4-ID(trackpid.Hyperhydrog4)]
	_ = x[XiMinus-ID(trackpid.XiMinus)]
	_ = x[OmegaMinus-ID(trackpid.OmegaMinus)]
	_ = x[PIDCounts-ID(trackpid.NIDsTot)]
}

var (
	// ErrIDOutOfRange is returned when an identifier lies outside [0, NIDsTot).
	ErrIDOutOfRange = errors.New("identifier out of range")
	// ErrUnknownCode is returned when a PDG code has no identifier.
	ErrUnknownCode = errors.New("unknown PDG code")
	// ErrUnknownName is returned when a display name has no identifier.
	ErrUnknownName = errors.New("unknown species name")
)

// Valid reports whether id lies in [0, NIDsTot).
func Valid(id ID) bool {
	return id >= 0 && id < NIDsTot
}

// IsBase reports whether id belongs to the range shared with the track PID
// catalog.
func IsBase(id ID) bool {
	return id >= 0 && id < PIDCounts
}

// String returns the display name, or ID(n) for an invalid identifier.
func (id ID) String() string {
	if !Valid(id) {
		return fmt.Sprintf("ID(%d)", int16(id))
	}
	return names[id]
}
