package model

import (
	"encoding/json"
	"fmt"
)

// JointName identifies one of the 19 tracked anatomical landmarks.
type JointName int

const (
	Head JointName = iota
	Neck
	Spine
	LShoulder
	LElbow
	LHand
	LFingers
	RShoulder
	RElbow
	RHand
	RFingers
	LHip
	LKnee
	LFoot
	LToe
	RHip
	RKnee
	RFoot
	RToe

	JointCount
)

var jointNames = [JointCount]string{
	Head:      "head",
	Neck:      "neck",
	Spine:     "spine",
	LShoulder: "l_shoulder",
	LElbow:    "l_elbow",
	LHand:     "l_hand",
	LFingers:  "l_fingers",
	RShoulder: "r_shoulder",
	RElbow:    "r_elbow",
	RHand:     "r_hand",
	RFingers:  "r_fingers",
	LHip:      "l_hip",
	LKnee:     "l_knee",
	LFoot:     "l_foot",
	LToe:      "l_toe",
	RHip:      "r_hip",
	RKnee:     "r_knee",
	RFoot:     "r_foot",
	RToe:      "r_toe",
}

func (j JointName) String() string {
	if j < 0 || j >= JointCount {
		return fmt.Sprintf("joint(%d)", int(j))
	}
	return jointNames[j]
}

var jointsByName = func() map[string]JointName {
	m := make(map[string]JointName, JointCount)
	for j := JointName(0); j < JointCount; j++ {
		m[jointNames[j]] = j
	}
	return m
}()

// JointByName resolves a serialized joint name.
func JointByName(name string) (JointName, bool) {
	j, ok := jointsByName[name]
	return j, ok
}

// JointPositions holds exactly one position per joint. A fixed array keeps
// state access O(1) and statically checked.
type JointPositions [JointCount]Vector3

func (p JointPositions) MarshalJSON() ([]byte, error) {
	m := make(map[string]Vector3, JointCount)
	for j := JointName(0); j < JointCount; j++ {
		m[jointNames[j]] = p[j]
	}
	return json.Marshal(m)
}

func (p *JointPositions) UnmarshalJSON(data []byte) error {
	var m map[string]Vector3
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	for name, pos := range m {
		j, ok := jointsByName[name]
		if !ok {
			return fmt.Errorf("unknown joint name %q", name)
		}
		p[j] = pos
	}
	return nil
}

// BoneEdge is a parent-child joint pair with a calibrated reference length.
type BoneEdge struct {
	Parent JointName
	Child  JointName
}

// Bones is the fixed bone hierarchy, topologically pre-sorted so that every
// parent appears as a child earlier in the list (or is the spine root).
// The constraint solver depends on this order: a child is corrected against
// its already-corrected parent, so reordering silently corrupts downstream
// joints.
var Bones = [18]BoneEdge{
	{Spine, Neck},
	{Neck, Head},
	{Neck, LShoulder},
	{LShoulder, LElbow},
	{LElbow, LHand},
	{LHand, LFingers},
	{Neck, RShoulder},
	{RShoulder, RElbow},
	{RElbow, RHand},
	{RHand, RFingers},
	{Spine, LHip},
	{LHip, LKnee},
	{LKnee, LFoot},
	{LFoot, LToe},
	{Spine, RHip},
	{RHip, RKnee},
	{RKnee, RFoot},
	{RFoot, RToe},
}

// BoneCount is the number of edges in the hierarchy.
const BoneCount = len(Bones)
