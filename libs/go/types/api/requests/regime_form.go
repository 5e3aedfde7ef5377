package requests

import "github.com/regime-co/regime-api/libs/go/types/business"

// SubmitFormStepRequest carries the answers of the current wizard step
type SubmitFormStepRequest struct {
	Answers business.RegimeFormAnswers `json:"answers"`
}

// JumpFormStepRequest moves the wizard to an already unlocked step
type JumpFormStepRequest struct {
	Step *int `json:"step" binding:"required,min=0"`
}
