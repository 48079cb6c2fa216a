// Package pdg holds PDG Monte Carlo particle codes that are not simple
// enough to spell inline: light nuclei and hypernuclei (10LZZZAAAI
// numbering), heavy-flavour hadrons and exotic states.
//
// Antiparticles carry the negated code.
package pdg

// Light nuclei.
const (
	Deuteron = 1000010020
	Triton   = 1000010030
	Helium3  = 1000020030
	Alpha    = 1000020040
)

// Hypernuclei.
const (
	HyperTriton    = 1010010030
	HyperHydrogen4 = 1010010040
	HyperHelium4   = 1010020040
)

// Mesons.
const (
	Phi   = 333
	B0    = 511
	BPlus = 521
	BS    = 531
	D0    = 421
	DPlus = 411
	DS    = 431
	DStar = 413
	ChiC1 = 20443
	JPsi  = 443
	X3872 = 9920443
)

// Baryons.
const (
	LambdaB0       = 5122
	LambdaCPlus    = 4122
	OmegaC0        = 4332
	SigmaC0        = 4112
	SigmaCPlusPlus = 4222
	Xi0            = 3322
	XiB0           = 5232
	XiCCPlusPlus   = 4422
	XiCPlus        = 4232
	XiC0           = 4132
)
