// Package bankregistry resolves receiver BICs to destination banks and
// partitions record sets into per-bank groups for export.
package bankregistry

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"swift-batch/internal/models"
)

// UnknownBank is the fallback group for records whose BIC matches no
// registered institution.
const UnknownBank = "Unknown Bank"

// Entry maps one bank to the BIC codes its branches transact under.
type Entry struct {
	Name string   `yaml:"name"`
	BICs []string `yaml:"bics"`
}

// Registry is an ordered list of bank entries. Order matters: partial BIC
// matching takes the first entry that fits, so the registry order is the
// deterministic tie-break.
type Registry struct {
	entries []Entry

	// reverse maps every registered BIC, and the 8-character prefix of any
	// longer BIC, to its bank name. Built once at construction.
	reverse map[string]string
	// reverseOrder preserves insertion order of reverse keys for the partial
	// matching scan.
	reverseOrder []string
}

// New builds a registry from an ordered entry list.
func New(entries []Entry) *Registry {
	r := &Registry{
		entries: entries,
		reverse: make(map[string]string),
	}
	for _, entry := range entries {
		for _, bic := range entry.BICs {
			r.index(bic, entry.Name)
			if len(bic) > 8 {
				r.index(bic[:8], entry.Name)
			}
		}
	}
	return r
}

func (r *Registry) index(bic, name string) {
	if _, exists := r.reverse[bic]; exists {
		return
	}
	r.reverse[bic] = name
	r.reverseOrder = append(r.reverseOrder, bic)
}

// Load reads a registry from a YAML file. The file is an ordered list of
// {name, bics} entries.
func Load(path string) (*Registry, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path comes from operator config
	if err != nil {
		return nil, fmt.Errorf("error reading bank registry: %w", err)
	}
	var entries []Entry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("error parsing bank registry: %w", err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("bank registry %s contains no entries", path)
	}
	return New(entries), nil
}

// Entries returns the ordered bank entries.
func (r *Registry) Entries() []Entry {
	return r.entries
}

// Resolve maps a receiver BIC to a bank name. Exact reverse-index lookup
// first, then a partial scan in registry order: a registered BIC extending
// the record's BIC, or the record's BIC extending the registered BIC's
// 8-character prefix, both count. Unmatched BICs resolve to UnknownBank.
func (r *Registry) Resolve(receiverBIC string) string {
	if name, ok := r.reverse[receiverBIC]; ok {
		return name
	}

	for _, registered := range r.reverseOrder {
		if hasPrefix(registered, receiverBIC) || hasPrefix(receiverBIC, prefix8(registered)) {
			return r.reverse[registered]
		}
	}

	return UnknownBank
}

// Group partitions records by resolved bank. Groups appear in order of first
// occurrence and records keep their relative order within each group.
func (r *Registry) Group(records []models.TransactionRecord) []BankGroup {
	byName := make(map[string]int)
	var groups []BankGroup

	for _, rec := range records {
		name := r.Resolve(rec.ReceiverBIC)
		idx, ok := byName[name]
		if !ok {
			idx = len(groups)
			byName[name] = idx
			groups = append(groups, BankGroup{Bank: name})
		}
		groups[idx].Records = append(groups[idx].Records, rec)
	}

	return groups
}

// BankGroup is one export unit: every record destined for the same bank.
type BankGroup struct {
	Bank    string
	Records []models.TransactionRecord
}

// BICs returns the distinct receiver BICs present in the group, in first
// occurrence order.
func (g BankGroup) BICs() []string {
	seen := make(map[string]struct{})
	var bics []string
	for _, rec := range g.Records {
		if _, ok := seen[rec.ReceiverBIC]; ok {
			continue
		}
		seen[rec.ReceiverBIC] = struct{}{}
		bics = append(bics, rec.ReceiverBIC)
	}
	return bics
}

func hasPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && s[:len(prefix)] == prefix
}

func prefix8(bic string) string {
	if len(bic) > 8 {
		return bic[:8]
	}
	return bic
}
