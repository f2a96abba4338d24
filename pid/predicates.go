package pid

// finalState is the set of |PID| magnitudes the detector observes directly:
// e/mu, charged pion/kaon, photon, proton, neutron.
var finalState = map[int64]struct{}{
	11:   {},
	13:   {},
	211:  {},
	321:  {},
	22:   {},
	2212: {},
	2112: {},
}

// undetectable is the set of |PID| magnitudes removed during MC pruning:
// neutrinos, taus, and the neutral kaon.
var undetectable = map[int64]struct{}{
	12:  {},
	14:  {},
	15:  {},
	16:  {},
	311: {},
}

// acceptablePhotonMother is the set of |PID| magnitudes a photon may descend
// from without being pruned as a spurious radiative vertex.
var acceptablePhotonMother = map[int64]struct{}{
	111: {},
	413: {},
	423: {},
}

// abs64 returns the absolute value of a signed lund id.
func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}

	return v
}

// IsFinalState reports whether lund is one of the stable species the
// detector observes directly. Sign (particle vs. antiparticle) is ignored.
func IsFinalState(lund int64) bool {
	_, ok := finalState[abs64(lund)]

	return ok
}

// IsUndetectable reports whether lund must be removed by MCPruner's
// irrelevant-vertex contraction (§4.6 P2b).
func IsUndetectable(lund int64) bool {
	_, ok := undetectable[abs64(lund)]

	return ok
}

// IsAcceptablePhotonMother reports whether lund is a valid parent species
// for a surviving photon vertex (§4.6 P2c).
func IsAcceptablePhotonMother(lund int64) bool {
	_, ok := acceptablePhotonMother[abs64(lund)]

	return ok
}

// PhotonLund is the lund id of the photon.
const PhotonLund int64 = 22
