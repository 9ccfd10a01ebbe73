package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/amanjot-a/fintrack/internal/model"
	"github.com/amanjot-a/fintrack/internal/storage"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// form fields, in focus order.
const (
	fieldAmount = iota
	fieldDate
	fieldType
	fieldCategory
	fieldDescription
	fieldCount
)

// FormModel is the new-transaction entry form. Type defaults to expense
// and category to the first enumerated category, matching the add dialog's
// defaults.
type FormModel struct {
	amount      textinput.Model
	date        textinput.Model
	description textinput.Model
	errText     string
	txType      model.TransactionType
	categoryIdx int
	focus       int
}

// NewFormModel creates an empty form with today's date prefilled.
func NewFormModel() FormModel {
	amount := textinput.New()
	amount.Placeholder = "0.00"
	amount.CharLimit = 12
	amount.Width = 20

	date := textinput.New()
	date.Placeholder = "YYYY-MM-DD"
	date.SetValue(time.Now().Format("2006-01-02"))
	date.CharLimit = 10
	date.Width = 20

	description := textinput.New()
	description.Placeholder = model.DefaultDescription
	description.CharLimit = 80
	description.Width = 40

	return FormModel{
		amount:      amount,
		date:        date,
		description: description,
		txType:      model.Expense,
	}
}

// Focus gives input focus to the first field.
func (f *FormModel) Focus() tea.Cmd {
	f.focus = fieldAmount
	return f.amount.Focus()
}

// SetError displays a validation message under the form.
func (f *FormModel) SetError(err error) {
	f.errText = err.Error()
}

// Entry validates the form and builds the ledger entry.
func (f FormModel) Entry() (storage.Entry, error) {
	amountText := strings.TrimSpace(f.amount.Value())
	if amountText == "" {
		return storage.Entry{}, fmt.Errorf("amount is required")
	}
	amount, err := strconv.ParseFloat(amountText, 64)
	if err != nil {
		return storage.Entry{}, fmt.Errorf("amount must be a number")
	}
	if amount <= 0 {
		return storage.Entry{}, fmt.Errorf("amount must be positive")
	}

	dateText := strings.TrimSpace(f.date.Value())
	if dateText == "" {
		return storage.Entry{}, fmt.Errorf("date is required")
	}
	date, err := time.ParseInLocation("2006-01-02", dateText, time.Local)
	if err != nil {
		return storage.Entry{}, fmt.Errorf("date must be YYYY-MM-DD")
	}

	return storage.Entry{
		Amount:      amount,
		Type:        f.txType,
		Category:    model.Categories[f.categoryIdx],
		Date:        date,
		Description: strings.TrimSpace(f.description.Value()),
	}, nil
}

// Update handles form key events.
func (f FormModel) Update(msg tea.KeyMsg) (FormModel, tea.Cmd) {
	switch msg.String() {
	case "up", "shift+tab":
		f.setFocus((f.focus + fieldCount - 1) % fieldCount)
		return f, nil
	case "down", "tab":
		f.setFocus((f.focus + 1) % fieldCount)
		return f, nil
	case "left", "right":
		switch f.focus {
		case fieldType:
			if f.txType == model.Expense {
				f.txType = model.Income
			} else {
				f.txType = model.Expense
			}
			return f, nil
		case fieldCategory:
			step := 1
			if msg.String() == "left" {
				step = len(model.Categories) - 1
			}
			f.categoryIdx = (f.categoryIdx + step) % len(model.Categories)
			return f, nil
		}
	}

	var cmd tea.Cmd
	switch f.focus {
	case fieldAmount:
		f.amount, cmd = f.amount.Update(msg)
	case fieldDate:
		f.date, cmd = f.date.Update(msg)
	case fieldDescription:
		f.description, cmd = f.description.Update(msg)
	}
	return f, cmd
}

func (f *FormModel) setFocus(field int) {
	f.focus = field
	f.amount.Blur()
	f.date.Blur()
	f.description.Blur()
	switch field {
	case fieldAmount:
		f.amount.Focus()
	case fieldDate:
		f.date.Focus()
	case fieldDescription:
		f.description.Focus()
	}
}

// View renders the form.
func (f FormModel) View() string {
	typeLabel := "Expense"
	typeStyle := expenseStyle
	if f.txType == model.Income {
		typeLabel = "Income"
		typeStyle = incomeStyle
	}

	rows := []string{
		formTitleStyle.Render("New Transaction"),
		f.rowLabel(fieldAmount, "Amount") + f.amount.View(),
		f.rowLabel(fieldDate, "Date") + f.date.View(),
		f.rowLabel(fieldType, "Type") + typeStyle.Render("◀ "+typeLabel+" ▶"),
		f.rowLabel(fieldCategory, "Category") + "◀ " + model.Categories[f.categoryIdx] + " ▶",
		f.rowLabel(fieldDescription, "Description") + f.description.View(),
		"",
		subtleStyle.Render("enter save · esc cancel · ←/→ toggle"),
	}
	if f.errText != "" {
		rows = append(rows, errorStyle.Render(f.errText))
	}

	return formBoxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (f FormModel) rowLabel(field int, label string) string {
	marker := "  "
	if f.focus == field {
		marker = "> "
	}
	return marker + labelStyle.Render(fmt.Sprintf("%-12s", label))
}
