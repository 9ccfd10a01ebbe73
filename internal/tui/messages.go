package tui

import (
	"github.com/amanjot-a/fintrack/internal/advice"
	"github.com/amanjot-a/fintrack/internal/model"
)

// transactionAddedMsg reports the outcome of an add mutation.
type transactionAddedMsg struct {
	err         error
	transaction model.Transaction
}

// transactionRemovedMsg reports the outcome of a delete mutation.
type transactionRemovedMsg struct {
	err error
	id  string
}

// adviceResultMsg delivers the (possibly fallback) insights text.
type adviceResultMsg struct {
	result advice.Result
}
