package advice

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"text/template"

	"github.com/amanjot-a/fintrack/internal/model"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var promptTemplate = template.Must(
	template.New("insights_prompt.tmpl").ParseFS(templateFS, "templates/insights_prompt.tmpl"),
)

// reducedTransaction is the compact record embedded in the prompt. Dates
// are day-only; field names are part of what the service sees, so keep
// them short and stable.
type reducedTransaction struct {
	Date     string                `json:"date"`
	Type     model.TransactionType `json:"type"`
	Category string                `json:"category"`
	Desc     string                `json:"desc"`
	Amount   float64               `json:"amount"`
}

// BuildPrompt renders the insights prompt for at most limit transactions,
// taken from the front of the collection (newest first).
func BuildPrompt(transactions []model.Transaction, limit int) (string, error) {
	if limit > 0 && len(transactions) > limit {
		transactions = transactions[:limit]
	}

	reduced := make([]reducedTransaction, 0, len(transactions))
	for _, tx := range transactions {
		reduced = append(reduced, reducedTransaction{
			Date:     tx.Day(),
			Type:     tx.Type,
			Category: tx.Category,
			Amount:   tx.Amount,
			Desc:     tx.Description,
		})
	}

	// Plain encoding, no HTML escaping: the text goes into a prompt, not a
	// web page, and "&" in category names should stay readable.
	var encoded bytes.Buffer
	encoder := json.NewEncoder(&encoded)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(reduced); err != nil {
		return "", fmt.Errorf("failed to encode transactions: %w", err)
	}

	var buf bytes.Buffer
	data := struct{ Transactions string }{Transactions: strings.TrimSpace(encoded.String())}
	if err := promptTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute prompt template: %w", err)
	}

	return buf.String(), nil
}
