package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/teller"
	"github.com/google/subcommands"
)

type importCmd struct {
	file string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import accounts and transactions from a JSON export" }
func (*importCmd) Usage() string {
	return `tlr import -f <file.json>

  Imports accounts and transactions from a JSON export document:

    {"accounts": [{"name": ..., "number": ..., "balance": ..., "password": ...}],
     "transactions": [{"number": ..., "kind": ..., "amount": ..., "description": ...}]}

  Entries that are malformed, duplicate an existing account number, or
  reference an unknown account are skipped with a warning.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "JSON export file to import")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.file == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	data, err := os.ReadFile(c.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %q: %v\n", c.file, err)
		return subcommands.ExitFailure
	}

	ledger, err := LoadLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	accounts, transactions, err := importDocument(ledger, data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing %q: %v\n", c.file, err)
		return subcommands.ExitFailure
	}

	if err := SaveLedger(ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Imported %d accounts and %d transactions from %s.\n", accounts, transactions, c.file)
	return subcommands.ExitSuccess
}

// importDocument merges a JSON export into the ledger and returns how many
// accounts and transactions were imported. Bad entries are skipped with a
// warning, never aborting the whole import.
func importDocument(ledger *teller.Ledger, data []byte) (accounts, transactions int, err error) {
	var jobj any
	if err := json.Unmarshal(data, &jobj); err != nil {
		return 0, 0, fmt.Errorf("invalid JSON document: %w", err)
	}

	for _, jacc := range jsonList(jobj, "$.accounts") {
		name := jsonString(jacc, "name")
		number := jsonInt(jacc, "number")
		balance := jsonFloat(jacc, "balance")
		password := jsonString(jacc, "password")

		a, err := teller.NewAccount(name, number, teller.USD(balance), password)
		if err != nil {
			log.Printf("warning: skipping account entry %d: %v", number, err)
			continue
		}
		if err := ledger.Add(a); err != nil {
			log.Printf("warning: skipping account entry: %v", err)
			continue
		}
		accounts++
	}

	for _, jtx := range jsonList(jobj, "$.transactions") {
		number := jsonInt(jtx, "number")
		a := ledger.Account(number)
		if a == nil {
			log.Printf("warning: transaction entry for unknown account %d, skipping", number)
			continue
		}
		kind, err := teller.ParseKind(jsonString(jtx, "kind"))
		if err != nil {
			log.Printf("warning: skipping transaction entry for account %d: %v", number, err)
			continue
		}
		tx, err := teller.NewTransaction(kind, teller.USD(jsonFloat(jtx, "amount")), jsonString(jtx, "description"))
		if err != nil {
			log.Printf("warning: skipping transaction entry for account %d: %v", number, err)
			continue
		}
		a.AddTransaction(tx)
		transactions++
	}
	return accounts, transactions, nil
}

// jsonList extracts a list at path, tolerating an absent path or a single
// object instead of a list.
func jsonList(jobj any, path string) []any {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil
	}
	if jlist, ok := jval.([]any); ok {
		return jlist
	}
	return []any{jval}
}

func jsonString(jobj any, key string) string {
	m, ok := jobj.(map[string]any)
	if !ok {
		return ""
	}
	s, _ := m[key].(string)
	return s
}

// jsonFloat reads a numeric field, tolerating the value being encoded as a
// string (some exports do that).
func jsonFloat(jobj any, key string) float64 {
	m, ok := jobj.(map[string]any)
	if !ok {
		return 0
	}
	switch v := m[key].(type) {
	case float64:
		return v
	case string:
		var f float64
		if _, err := fmt.Sscanf(v, "%g", &f); err == nil {
			return f
		}
	}
	return 0
}

func jsonInt(jobj any, key string) int {
	return int(jsonFloat(jobj, key))
}
