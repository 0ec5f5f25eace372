package usecase

import (
	"github.com/tiyun2012/mocaptest/pkg/model"
)

// standingPose is a plausible calibration-frame skeleton, meters, Y-up.
func standingPose() model.JointPositions {
	var p model.JointPositions
	p[model.Spine] = model.Vector3{X: 0, Y: 1.0, Z: 0}
	p[model.Neck] = model.Vector3{X: 0, Y: 1.45, Z: 0}
	p[model.Head] = model.Vector3{X: 0, Y: 1.65, Z: 0}
	p[model.LShoulder] = model.Vector3{X: 0.2, Y: 1.4, Z: 0}
	p[model.LElbow] = model.Vector3{X: 0.3, Y: 1.1, Z: 0}
	p[model.LHand] = model.Vector3{X: 0.35, Y: 0.85, Z: 0}
	p[model.LFingers] = model.Vector3{X: 0.37, Y: 0.75, Z: 0}
	p[model.RShoulder] = model.Vector3{X: -0.2, Y: 1.4, Z: 0}
	p[model.RElbow] = model.Vector3{X: -0.3, Y: 1.1, Z: 0}
	p[model.RHand] = model.Vector3{X: -0.35, Y: 0.85, Z: 0}
	p[model.RFingers] = model.Vector3{X: -0.37, Y: 0.75, Z: 0}
	p[model.LHip] = model.Vector3{X: 0.1, Y: 0.95, Z: 0}
	p[model.LKnee] = model.Vector3{X: 0.12, Y: 0.5, Z: 0}
	p[model.LFoot] = model.Vector3{X: 0.13, Y: 0.08, Z: 0}
	p[model.LToe] = model.Vector3{X: 0.14, Y: 0.02, Z: 0.1}
	p[model.RHip] = model.Vector3{X: -0.1, Y: 0.95, Z: 0}
	p[model.RKnee] = model.Vector3{X: -0.12, Y: 0.5, Z: 0}
	p[model.RFoot] = model.Vector3{X: -0.13, Y: 0.08, Z: 0}
	p[model.RToe] = model.Vector3{X: -0.14, Y: 0.02, Z: 0.1}
	return p
}

// rawFrame converts a joint set into a fully visible detector frame.
func rawFrame(t float64, pose model.JointPositions) model.RawFrame {
	landmarks := make(map[string]model.RawJoint, model.JointCount)
	for j := model.JointName(0); j < model.JointCount; j++ {
		landmarks[j.String()] = model.RawJoint{
			X: pose[j].X, Y: pose[j].Y, Z: pose[j].Z, Visibility: 1,
		}
	}
	return model.RawFrame{Time: t, Landmarks: landmarks}
}
