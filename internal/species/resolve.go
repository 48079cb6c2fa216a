package species

import (
	"fmt"

	"github.com/CodexForgeBR/pidext/internal/logging"
	"github.com/CodexForgeBR/pidext/internal/pdg"
)

// Particle is anything that reports a PDG Monte Carlo code, typically a
// generated particle from the event record.
type Particle interface {
	PdgCode() int
}

// codeTable is the ordered list of exact PDG code matches. Codes and
// identifiers are each unique.
var codeTable = []struct {
	code int
	id   ID
}{
	{11, Electron},
	{-11, Positron},
	{13, Muon},
	{-13, MuonPlus},
	{211, Pion},
	{-211, PionMinus},
	{321, Kaon},
	{-321, KaonMinus},
	{2212, Proton},
	{-2212, AntiProton},
	{2112, Neutron},
	{-2112, AntiNeutron},
	{pdg.Deuteron, Deuteron},
	{-pdg.Deuteron, AntiDeuteron},
	{pdg.Triton, Triton},
	{-pdg.Triton, AntiTriton},
	{pdg.Helium3, Helium3},
	{-pdg.Helium3, AntiHelium3},
	{pdg.Alpha, Alpha},
	{-pdg.Alpha, AntiAlpha},
	{pdg.HyperHelium4, HyperHelium4},
	{-pdg.HyperHelium4, AntiHyperHelium4},
	{111, PI0},
	{22, Photon},
	{130, K0},
	{3122, Lambda},
	{-3122, AntiLambda},
	{pdg.HyperTriton, HyperTriton},
	{-pdg.HyperTriton, AntiHyperTriton},
	{pdg.HyperHydrogen4, Hyperhydrog4},
	{-pdg.HyperHydrogen4, AntiHyperhydrog4},
	{3312, XiMinus},
	{-3312, XiPlus},
	{3334, OmegaMinus},
	{-3334, OmegaPlus},
	{pdg.Phi, Phi},
	{pdg.B0, BZero},
	{pdg.BPlus, BPlus},
	{pdg.BS, BS},
	{pdg.D0, D0},
	{pdg.DPlus, DPlus},
	{pdg.DS, DS},
	{pdg.DStar, DStar},
	{pdg.ChiC1, ChiC1},
	{pdg.JPsi, JPsi},
	{pdg.LambdaB0, LambdaB0},
	{pdg.LambdaCPlus, LambdaCPlus},
	{pdg.OmegaC0, OmegaC0},
	{pdg.SigmaC0, SigmaC0},
	{pdg.SigmaCPlusPlus, SigmaCPlusPlus},
	{pdg.X3872, X3872},
	{pdg.Xi0, Xi0},
	{pdg.XiB0, XiB0},
	{pdg.XiCCPlusPlus, XiCCPlusPlus},
	{pdg.XiCPlus, XiCPlus},
	{pdg.XiC0, XiC0},
}

var (
	idByCode map[int]ID
	codeByID []int
)

func init() {
	var err error
	idByCode, codeByID, err = buildCodes()
	if err != nil {
		panic(err)
	}
}

func buildCodes() (map[int]ID, []int, error) {
	byCode := make(map[int]ID, len(codeTable))
	byID := make([]int, NIDsTot)
	mapped := make([]bool, NIDsTot)

	for _, e := range codeTable {
		if !Valid(e.id) {
			return nil, nil, fmt.Errorf("PDG code %d maps to %w: %d", e.code, ErrIDOutOfRange, e.id)
		}
		if prev, ok := byCode[e.code]; ok {
			return nil, nil, fmt.Errorf("PDG code %d mapped twice (%s, %s)", e.code, prev, e.id)
		}
		if mapped[e.id] {
			return nil, nil, fmt.Errorf("identifier %s has more than one PDG code", e.id)
		}
		byCode[e.code] = e.id
		byID[e.id] = e.code
		mapped[e.id] = true
	}
	return byCode, byID, nil
}

// FromCode resolves a PDG code. Unknown codes return NotFound and false.
func FromCode(code int) (ID, bool) {
	id, ok := idByCode[code]
	if !ok {
		logging.Debug(fmt.Sprintf("Cannot identify particle with PDG code %d", code))
		return NotFound, false
	}
	return id, true
}

// PDGToID resolves the PDG code reported by p.
func PDGToID(p Particle) (ID, bool) {
	return FromCode(p.PdgCode())
}

// Lookup is FromCode with an error wrapping ErrUnknownCode in place of the
// boolean.
func Lookup(code int) (ID, error) {
	id, ok := FromCode(code)
	if !ok {
		return NotFound, fmt.Errorf("%w: %d", ErrUnknownCode, code)
	}
	return id, nil
}

// Code returns the PDG code that resolves to id.
func Code(id ID) (int, bool) {
	if !Valid(id) {
		return 0, false
	}
	return codeByID[id], true
}

// Antiparticle returns the identifier of the charge-conjugate species, found
// by resolving the negated PDG code. Self-conjugate species and species whose
// antiparticle has no identifier report false.
func Antiparticle(id ID) (ID, bool) {
	code, ok := Code(id)
	if !ok {
		return NotFound, false
	}
	anti, ok := idByCode[-code]
	if !ok {
		return NotFound, false
	}
	return anti, true
}
