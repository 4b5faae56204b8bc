// Package action holds the pure decision rules of the action surface: which
// transaction primitive an action resolves to, with which arguments, and
// whether submission is currently allowed.
package action

import "github.com/dwarvesf/lending-backend/internal/model"

// State is everything the resolver reads for one submission.
type State struct {
	Selection     model.AssetSelection
	Input         model.UserInput
	Limits        model.AssetLimits
	Max           model.MaxAmounts
	NativeTokenID string
}

func (s State) isNative() bool {
	return s.Selection.TokenID == s.NativeTokenID
}
