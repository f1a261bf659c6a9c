package doctor

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/kisanlabs/plantdoctor/internal/llm"
	"github.com/kisanlabs/plantdoctor/internal/store"
)

// FailureKind classifies why a turn fell back.
type FailureKind string

const (
	KindTransport FailureKind = store.OutcomeTransport
	KindParse     FailureKind = store.OutcomeParse
	KindSchema    FailureKind = store.OutcomeSchema
	KindRejected  FailureKind = store.OutcomeRejected
)

// TurnError is a classified turn failure.
type TurnError struct {
	Kind FailureKind
	Err  error
}

func (e *TurnError) Error() string {
	return fmt.Sprintf("%s failure: %v", e.Kind, e.Err)
}

func (e *TurnError) Unwrap() error {
	return e.Err
}

// classify maps a provider error to a failure kind.
func classify(err error) *TurnError {
	var invalid *llm.ErrInvalidResponse
	if errors.As(err, &invalid) {
		var syntax *json.SyntaxError
		if errors.As(err, &syntax) {
			return &TurnError{Kind: KindParse, Err: err}
		}
		return &TurnError{Kind: KindSchema, Err: err}
	}

	var maxTok *llm.ErrMaxTokensExceeded
	if errors.As(err, &maxTok) {
		return &TurnError{Kind: KindParse, Err: err}
	}

	return &TurnError{Kind: KindTransport, Err: err}
}
