package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tiyun2012/mocaptest/pkg/config"
	"github.com/tiyun2012/mocaptest/pkg/model"
)

// unitPose calibrates the spine→neck edge to exactly 1.0 so the tier
// boundaries can be probed with round numbers.
func unitPose() model.JointPositions {
	p := standingPose()
	p[model.Spine] = model.Vector3{}
	p[model.Neck] = model.Vector3{Y: 1.0}
	p[model.Head] = model.Vector3{Y: 1.2}
	return p
}

func TestAcceptTierLeavesSmallDeviationAlone(t *testing.T) {
	solver := NewConstraintSolver(config.DefaultTuning())
	solver.Calibrate(unitPose())

	pose := unitPose()
	pose[model.Neck] = model.Vector3{Y: 1.04} // 4% long: within tolerance
	prev := unitPose()

	out := solver.Solve(pose, &prev)
	assert.Equal(t, model.Vector3{Y: 1.04}, out[model.Neck])
}

func TestSoftTierRescalesToReferenceLength(t *testing.T) {
	solver := NewConstraintSolver(config.DefaultTuning())
	solver.Calibrate(unitPose())

	pose := unitPose()
	pose[model.Neck] = model.Vector3{Y: 1.20} // 20% long: rescale
	prev := unitPose()

	out := solver.Solve(pose, &prev)
	// Direction preserved, length forced back to exactly 1.0.
	assert.InDelta(t, 1.0, out[model.Neck].Subed(out[model.Spine]).Length(), 1e-12)
	assert.InDelta(t, 0.0, out[model.Neck].X, 1e-12)
	assert.InDelta(t, 1.0, out[model.Neck].Y, 1e-12)
}

func TestHardTierCarriesPreviousOffsetForward(t *testing.T) {
	solver := NewConstraintSolver(config.DefaultTuning())
	solver.Calibrate(unitPose())

	pose := unitPose()
	pose[model.Neck] = model.Vector3{Y: 2.0} // 100% long: tracking failure
	prev := unitPose()
	prev[model.Neck] = model.Vector3{X: 0.1, Y: 0.99}

	out := solver.Solve(pose, &prev)
	// Previous relative offset rigidly re-applied to the corrected parent.
	assert.Equal(t, prev[model.Neck].Subed(prev[model.Spine]).Added(out[model.Spine]), out[model.Neck])
}

func TestHardTierSkippedWithoutPreviousFrame(t *testing.T) {
	solver := NewConstraintSolver(config.DefaultTuning())
	solver.Calibrate(unitPose())

	pose := unitPose()
	pose[model.Neck] = model.Vector3{Y: 2.0}

	out := solver.Solve(pose, nil)
	assert.Equal(t, model.Vector3{Y: 2.0}, out[model.Neck])
}

func TestChildCorrectedAgainstCorrectedParent(t *testing.T) {
	solver := NewConstraintSolver(config.DefaultTuning())
	solver.Calibrate(unitPose())

	// Displace the neck into the hard tier; the head must end up measured
	// from the carried-forward neck, not the raw one.
	pose := unitPose()
	pose[model.Neck] = model.Vector3{Y: 2.0}
	pose[model.Head] = model.Vector3{Y: 2.2}
	prev := unitPose()

	out := solver.Solve(pose, &prev)
	require.Equal(t, prev[model.Neck], out[model.Neck])
	assert.Equal(t, prev[model.Head], out[model.Head])
}

func TestZeroReferenceLengthIsGuarded(t *testing.T) {
	pose := unitPose()
	pose[model.LFingers] = pose[model.LHand] // degenerate calibration edge

	solver := NewConstraintSolver(config.DefaultTuning())
	solver.Calibrate(pose)

	next := pose
	next[model.LFingers] = pose[model.LHand].Added(model.Vector3{X: 0.2})
	prev := pose

	// deviation = |0.2 - 0| / 1 = 0.2: soft tier, rescaled to the zero
	// reference, collapsing the fingers back onto the hand.
	out := solver.Solve(next, &prev)
	assert.Equal(t, out[model.LHand], out[model.LFingers])
}

func TestReferenceLengthsAreImmutable(t *testing.T) {
	solver := NewConstraintSolver(config.DefaultTuning())
	solver.Calibrate(unitPose())
	refs := solver.References()

	// Re-calibration attempts and further solving must not move them.
	grown := unitPose()
	grown[model.Neck] = model.Vector3{Y: 1.5}
	solver.Calibrate(grown)
	prev := unitPose()
	solver.Solve(grown, &prev)

	assert.Equal(t, refs, solver.References())
}
