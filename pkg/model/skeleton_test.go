package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBonesAreOrderedParentBeforeChild(t *testing.T) {
	corrected := map[JointName]bool{Spine: true}
	for _, bone := range Bones {
		assert.True(t, corrected[bone.Parent],
			"parent %s of %s must appear as a child earlier in the hierarchy", bone.Parent, bone.Child)
		corrected[bone.Child] = true
	}
	// Every joint is reachable from the spine root.
	assert.Len(t, corrected, int(JointCount))
}

func TestJointByName(t *testing.T) {
	for j := JointName(0); j < JointCount; j++ {
		got, ok := JointByName(j.String())
		require.True(t, ok)
		assert.Equal(t, j, got)
	}
	_, ok := JointByName("tail")
	assert.False(t, ok)
}

func TestJointPositionsJSONRoundTrip(t *testing.T) {
	var original JointPositions
	for j := JointName(0); j < JointCount; j++ {
		original[j] = Vector3{X: float64(j) * 0.1, Y: float64(j) * 0.2, Z: -float64(j)}
	}

	data, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded JointPositions
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, original, decoded)
}

func TestJointPositionsUnmarshalRejectsUnknownJoint(t *testing.T) {
	var p JointPositions
	err := json.Unmarshal([]byte(`{"tail":{"x":0,"y":0,"z":0}}`), &p)
	assert.Error(t, err)
}

func TestVector3Math(t *testing.T) {
	a := Vector3{X: 1, Y: 2, Z: 2}
	assert.Equal(t, 3.0, a.Length())
	assert.Equal(t, Vector3{X: 2, Y: 4, Z: 4}, a.MuledScalar(2))
	assert.InDelta(t, 1.0, a.Normalized().Length(), 1e-12)
	assert.Equal(t, Vector3{}, Vector3{}.Normalized())
	assert.Equal(t, 3.0, a.Distance(Vector3{X: 1, Y: 2, Z: -1}))
}
