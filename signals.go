package coerce

import (
	"context"
	"fmt"

	"github.com/zoobzio/capitan"
)

// Signals for steps that fell back. Coercion has no caller context, so they
// are emitted with context.Background. Set Config.Silent to disable them.
var (
	SignalDecodeFailed   = capitan.NewSignal("coerce.decode.failed", "Text could not be decoded into the requested shape")
	SignalCallbackFailed = capitan.NewSignal("coerce.callback.failed", "Map callback panicked or returned an error")
	SignalRuleFailed     = capitan.NewSignal("coerce.rule.failed", "Validation gate rejected the value")
)

// Keys for typed event data.
var (
	KeyOperation = capitan.NewStringKey("operation")
	KeyValueType = capitan.NewStringKey("value_type")
	KeyError     = capitan.NewErrorKey("error")
)

func (c Value) failureFields(op string, err error) []capitan.Field {
	return []capitan.Field{
		KeyOperation.Field(op),
		KeyValueType.Field(fmt.Sprintf("%T", c.v)),
		KeyError.Field(err),
	}
}

// emitDecodeFailed reports a decode or shape failure.
func (c Value) emitDecodeFailed(op string, sentinel, cause error) {
	if c.config().Silent {
		return
	}
	capitan.Error(context.Background(), SignalDecodeFailed, c.failureFields(op, newCoercionError(sentinel, op, cause))...)
}

// emitCallbackFailed reports a failed Map or TryMap callback.
func (c Value) emitCallbackFailed(op string, cause error) {
	if c.config().Silent {
		return
	}
	capitan.Error(context.Background(), SignalCallbackFailed, c.failureFields(op, newCoercionError(ErrCallback, op, cause))...)
}

// emitRuleFailed reports a rejected validation gate.
func (c Value) emitRuleFailed(op string, cause error) {
	if c.config().Silent {
		return
	}
	capitan.Error(context.Background(), SignalRuleFailed, c.failureFields(op, newCoercionError(ErrRule, op, cause))...)
}
