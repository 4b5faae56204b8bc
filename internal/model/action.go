package model

// Action is the intent a user picked on the action surface.
type Action string

const (
	ActionSupply   Action = "Supply"
	ActionBorrow   Action = "Borrow"
	ActionWithdraw Action = "Withdraw"
	ActionAdjust   Action = "Adjust"
	ActionRepay    Action = "Repay"
)

var actionTitles = map[Action]string{
	ActionSupply:   "Supply",
	ActionBorrow:   "Borrow",
	ActionWithdraw: "Withdraw",
	ActionAdjust:   "Adjust Collateral",
	ActionRepay:    "Repay",
}

// Actions lists every supported action in display order.
func Actions() []Action {
	return []Action{ActionSupply, ActionBorrow, ActionWithdraw, ActionAdjust, ActionRepay}
}

func (a Action) IsValid() bool {
	_, ok := actionTitles[a]
	return ok
}

// Title is the label of the submit button for the action.
func (a Action) Title() string {
	return actionTitles[a]
}

func (a Action) String() string {
	return string(a)
}
