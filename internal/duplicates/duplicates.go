// Package duplicates flags likely duplicate transactions inside a record set.
//
// Detection is two-phase: records are first bucketed on an exact composite key
// (payer account, amount, beneficiary account) and only bucket members are
// compared pairwise with fuzzy name matching. The exact key is a strong
// pre-filter, so the quadratic pairwise step runs over small buckets.
package duplicates

import (
	"fmt"
	"strings"

	"swift-batch/internal/models"
	"swift-batch/internal/textutils"
)

// keySeparator keeps distinct field triples from colliding in the bucket key.
const keySeparator = "-"

func bucketKey(rec models.TransactionRecord) string {
	return rec.PayerAccount + keySeparator + rec.Amount + keySeparator + rec.BeneficiaryAccount
}

// FuzzyMatch reports whether two names refer to the same party. Both names are
// normalized and tokenized; they match when every token of the smaller set
// appears in the larger set. Word order and case are irrelevant. Symmetric.
// Names with no tokens never match anything.
func FuzzyMatch(name1, name2 string) bool {
	words1 := textutils.Tokens(name1)
	words2 := textutils.Tokens(name2)

	if len(words1) == 0 || len(words2) == 0 {
		return false
	}

	set1 := toSet(words1)
	set2 := toSet(words2)

	if len(set1) <= len(set2) {
		return isSubset(set1, set2)
	}
	return isSubset(set2, set1)
}

func toSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, word := range words {
		set[word] = struct{}{}
	}
	return set
}

func isSubset(smaller, larger map[string]struct{}) bool {
	for word := range smaller {
		if _, ok := larger[word]; !ok {
			return false
		}
	}
	return true
}

// Detect returns a copy of records with IsDuplicate recomputed over the whole
// set. Every record that appears in at least one matching pair is flagged;
// flags from earlier runs are cleared. Record order and all other fields are
// left untouched.
func Detect(records []models.TransactionRecord) []models.TransactionRecord {
	buckets := make(map[string][]int)
	for i, rec := range records {
		key := bucketKey(rec)
		buckets[key] = append(buckets[key], i)
	}

	flagged := make(map[string]struct{})
	for _, indices := range buckets {
		for i := 0; i < len(indices); i++ {
			for j := i + 1; j < len(indices); j++ {
				rec1 := records[indices[i]]
				rec2 := records[indices[j]]
				if FuzzyMatch(rec1.PayerName, rec2.PayerName) ||
					FuzzyMatch(rec1.BeneficiaryName, rec2.BeneficiaryName) {
					flagged[rec1.ID] = struct{}{}
					flagged[rec2.ID] = struct{}{}
				}
			}
		}
	}

	result := make([]models.TransactionRecord, len(records))
	for i, rec := range records {
		_, isDup := flagged[rec.ID]
		rec.IsDuplicate = isDup
		result[i] = rec
	}
	return result
}

// Remove drops every record currently flagged as a duplicate. Idempotent.
func Remove(records []models.TransactionRecord) []models.TransactionRecord {
	unique := make([]models.TransactionRecord, 0, len(records))
	for _, rec := range records {
		if !rec.IsDuplicate {
			unique = append(unique, rec)
		}
	}
	return unique
}

// Count returns the number of records currently flagged as duplicates.
func Count(records []models.TransactionRecord) int {
	count := 0
	for _, rec := range records {
		if rec.IsDuplicate {
			count++
		}
	}
	return count
}

// Details produces one report line per group of flagged records, naming the
// 1-based row numbers of each group within the current set.
func Details(records []models.TransactionRecord) []string {
	groups := make(map[string][]int)
	var order []string
	for i, rec := range records {
		if !rec.IsDuplicate {
			continue
		}
		key := strings.Join([]string{rec.PayerName, rec.PayerAccount, rec.Amount, rec.BeneficiaryAccount}, keySeparator)
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], i+1)
	}

	details := make([]string, 0, len(order))
	for _, key := range order {
		rows := make([]string, len(groups[key]))
		for i, row := range groups[key] {
			rows[i] = fmt.Sprintf("%d", row)
		}
		details = append(details, fmt.Sprintf("Duplicate entry found in rows: %s", strings.Join(rows, ", ")))
	}
	return details
}
