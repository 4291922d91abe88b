package insights

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jrazmi/dashboard/core/repositories/expensesrepo"
	"github.com/jrazmi/dashboard/core/repositories/tasksrepo"
)

type promptTask struct {
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Status      string   `json:"status"`
	Priority    string   `json:"priority"`
	Completed   bool     `json:"completed"`
	DueDate     string   `json:"dueDate,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

type promptExpense struct {
	Description   string `json:"description"`
	Amount        string `json:"amount"`
	Category      string `json:"category"`
	Date          string `json:"date"`
	PaymentMethod string `json:"paymentMethod"`
	Status        string `json:"status"`
}

const promptFormat = `You are a helpful AI assistant. Here is the user's data:
Tasks: %s
Expenses: %s

Generate a JSON object in the following exact format (NO code blocks, NO markdown, JUST pure JSON):

{
  "summary": "write a 2-3 sentence summary of overall productivity and status.",
  "recommendations": ["suggest up to 3 next tasks or improvements"],
  "spendingInsight": "brief comment about monthly expenses or budgeting."
}
Make sure output is valid raw JSON only, with no text before or after.
`

// BuildPrompt embeds the records as indented JSON in the instruction text.
func BuildPrompt(tasks []tasksrepo.Task, expenses []expensesrepo.Expense) (string, error) {
	pt := make([]promptTask, len(tasks))
	for i, t := range tasks {
		pt[i] = promptTask{
			Title:       t.Title,
			Description: t.Description,
			Status:      t.Status,
			Priority:    t.Priority,
			Completed:   t.Completed(),
			Tags:        t.Tags,
		}
		if t.DueDate != nil {
			pt[i].DueDate = t.DueDate.Format("2006-01-02")
		}
	}

	pe := make([]promptExpense, len(expenses))
	for i, e := range expenses {
		pe[i] = promptExpense{
			Description:   e.Description,
			Amount:        e.Amount.StringFixed(2),
			Category:      e.Category,
			Date:          e.Date.Format("2006-01-02"),
			PaymentMethod: e.PaymentMethod,
			Status:        e.Status,
		}
	}

	tj, err := json.MarshalIndent(pt, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal tasks: %w", err)
	}
	ej, err := json.MarshalIndent(pe, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal expenses: %w", err)
	}

	return strings.TrimLeft(fmt.Sprintf(promptFormat, tj, ej), "\n"), nil
}
