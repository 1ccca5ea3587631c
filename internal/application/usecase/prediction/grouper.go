package prediction

import (
	"sort"
	"strings"

	"github.com/wealth-tracker/backend/internal/domain/entity"
	"github.com/wealth-tracker/backend/internal/domain/valueobject"
)

// groupRecords partitions records into recurrence candidate groups keyed by
// (recipient, category, type), each sorted ascending by date.
//
// Rows are excluded from grouping when they represent internal transfers,
// carry no recipient (no stable identity to recur under), or have a date that
// cannot be parsed. Exclusion is silent: detection degrades, it never fails.
func groupRecords(records []Record) map[valueobject.GroupKey][]valueobject.Occurrence {
	groups := make(map[valueobject.GroupKey][]valueobject.Occurrence)

	for _, record := range records {
		if record.Category == entity.CategoryInternalTransfer {
			continue
		}

		recipient := strings.TrimSpace(record.Recipient)
		if recipient == "" {
			continue
		}

		date, ok := parseRecordDate(record.Date)
		if !ok {
			continue
		}

		category := record.Category
		if category == "" {
			category = entity.CategoryUncategorized
		}

		txnType := record.Type
		if txnType == "" {
			txnType = entity.TransactionTypeExpense
		}

		key := valueobject.GroupKey{
			Recipient: recipient,
			Category:  category,
			Type:      txnType,
		}
		groups[key] = append(groups[key], valueobject.Occurrence{
			Date:     date,
			Amount:   record.Amount,
			Currency: record.Currency,
		})
	}

	for key := range groups {
		occurrences := groups[key]
		sort.Slice(occurrences, func(i, j int) bool {
			return occurrences[i].Date.Before(occurrences[j].Date)
		})
	}

	return groups
}
