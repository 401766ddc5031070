package storage

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/tallyfin/tally/internal/common"
	"github.com/tallyfin/tally/internal/model"
)

// Pipe-delimited text format, for import/export compatibility with other
// bookkeeping tools. Amounts are integers in minor units; dates use
// YYYY-MM-DD.
const textDateLayout = "2006-01-02"

// EncodeTransaction renders one transaction as a pipe-delimited line.
func EncodeTransaction(txn model.Transaction) string {
	return strings.Join([]string{
		txn.Date.Format(textDateLayout),
		string(txn.Kind),
		txn.Category,
		strconv.FormatInt(txn.Amount, 10),
		txn.Description,
	}, "|")
}

// EncodeBudget renders one budget as a pipe-delimited line.
func EncodeBudget(b model.Budget) string {
	return strings.Join([]string{
		b.Category,
		strconv.FormatInt(b.Limit, 10),
		string(b.Period),
	}, "|")
}

// EncodeGoal renders one goal as a pipe-delimited line.
func EncodeGoal(g model.Goal) string {
	return strings.Join([]string{
		g.Name,
		strconv.FormatInt(g.Target, 10),
		strconv.FormatInt(g.Current, 10),
		g.Deadline.Format(textDateLayout),
		g.Created.Format(textDateLayout),
		g.Type,
	}, "|")
}

// DecodeTransactions reads pipe-delimited transaction lines. Malformed
// lines are skipped with a warning, never fatal.
func DecodeTransactions(r io.Reader) ([]model.Transaction, error) {
	var txns []model.Transaction
	err := scanLines(r, func(lineNo int, line string) {
		txn, err := decodeTransactionLine(line)
		if err != nil {
			common.LogWarn("skipping malformed transaction record", common.Fields{
				"line":  lineNo,
				"error": err,
			})
			return
		}
		txns = append(txns, txn)
	})
	if err != nil {
		return nil, err
	}
	return txns, nil
}

// DecodeBudgets reads pipe-delimited budget lines, skipping malformed ones.
func DecodeBudgets(r io.Reader) ([]model.Budget, error) {
	var budgets []model.Budget
	err := scanLines(r, func(lineNo int, line string) {
		b, err := decodeBudgetLine(line)
		if err != nil {
			common.LogWarn("skipping malformed budget record", common.Fields{
				"line":  lineNo,
				"error": err,
			})
			return
		}
		budgets = append(budgets, b)
	})
	if err != nil {
		return nil, err
	}
	return budgets, nil
}

// DecodeGoals reads pipe-delimited goal lines, skipping malformed ones.
func DecodeGoals(r io.Reader) ([]model.Goal, error) {
	var goals []model.Goal
	err := scanLines(r, func(lineNo int, line string) {
		g, err := decodeGoalLine(line)
		if err != nil {
			common.LogWarn("skipping malformed goal record", common.Fields{
				"line":  lineNo,
				"error": err,
			})
			return
		}
		goals = append(goals, g)
	})
	if err != nil {
		return nil, err
	}
	return goals, nil
}

func scanLines(r io.Reader, handle func(lineNo int, line string)) error {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		handle(lineNo, line)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read records: %w", err)
	}
	return nil
}

func decodeTransactionLine(line string) (model.Transaction, error) {
	parts := strings.Split(line, "|")
	if len(parts) != 5 {
		return model.Transaction{}, fmt.Errorf("%w: expected 5 fields, got %d", common.ErrMalformedRecord, len(parts))
	}

	date, err := time.Parse(textDateLayout, parts[0])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("invalid date %q: %w", parts[0], err)
	}
	amount, err := strconv.ParseInt(parts[3], 10, 64)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("invalid amount %q: %w", parts[3], err)
	}

	txn := model.Transaction{
		Date:        date,
		Kind:        model.Kind(parts[1]),
		Category:    parts[2],
		Amount:      amount,
		Description: parts[4],
	}
	if err := txn.Validate(); err != nil {
		return model.Transaction{}, err
	}
	return txn, nil
}

func decodeBudgetLine(line string) (model.Budget, error) {
	parts := strings.Split(line, "|")
	if len(parts) != 3 {
		return model.Budget{}, fmt.Errorf("%w: expected 3 fields, got %d", common.ErrMalformedRecord, len(parts))
	}

	limit, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return model.Budget{}, fmt.Errorf("invalid limit %q: %w", parts[1], err)
	}

	b := model.Budget{
		Category: parts[0],
		Limit:    limit,
		Period:   model.Period(parts[2]),
	}
	if err := b.Validate(); err != nil {
		return model.Budget{}, err
	}
	return b, nil
}

func decodeGoalLine(line string) (model.Goal, error) {
	parts := strings.Split(line, "|")
	if len(parts) != 6 {
		return model.Goal{}, fmt.Errorf("%w: expected 6 fields, got %d", common.ErrMalformedRecord, len(parts))
	}

	target, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return model.Goal{}, fmt.Errorf("invalid target %q: %w", parts[1], err)
	}
	current, err := strconv.ParseInt(parts[2], 10, 64)
	if err != nil {
		return model.Goal{}, fmt.Errorf("invalid current %q: %w", parts[2], err)
	}
	deadline, err := time.Parse(textDateLayout, parts[3])
	if err != nil {
		return model.Goal{}, fmt.Errorf("invalid deadline %q: %w", parts[3], err)
	}
	created, err := time.Parse(textDateLayout, parts[4])
	if err != nil {
		return model.Goal{}, fmt.Errorf("invalid created date %q: %w", parts[4], err)
	}

	g := model.Goal{
		Name:     parts[0],
		Target:   target,
		Current:  current,
		Deadline: deadline,
		Created:  created,
		Type:     parts[5],
	}
	if err := g.Validate(); err != nil {
		return model.Goal{}, err
	}
	return g, nil
}
