package model

// RewardsTask is the payload threaded through the three workflow steps. Each
// step copies its input and adds its own field, mirroring the state machine's
// pass-through contract.
type RewardsTask struct {
	UETR        string `json:"uetr"`
	PointsAdded *int   `json:"pointsAdded,omitempty"`
	CardLast4   string `json:"cardLast4,omitempty"`
	Updated     bool   `json:"updated,omitempty"`
}
