package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ngoguened/zoo/pkg/types"
)

// parseAreaIDs converts positional arguments into area ids.
func parseAreaIDs(args []string) ([]int, error) {
	ids := make([]int, 0, len(args))
	for _, arg := range args {
		id, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid area id %q", arg)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// parseCash converts "denomination=count" pairs (pence) into a CashCount.
// Repeating a denomination adds to its count.
func parseCash(pairs []string) (types.CashCount, error) {
	var cash types.CashCount
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			return types.CashCount{}, fmt.Errorf("invalid cash %q (expected pence=count)", pair)
		}
		pence, err := strconv.Atoi(strings.TrimSpace(key))
		if err != nil {
			return types.CashCount{}, fmt.Errorf("invalid denomination %q", key)
		}
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return types.CashCount{}, fmt.Errorf("invalid count %q", value)
		}
		d, err := types.ParseDenomination(pence)
		if err != nil {
			return types.CashCount{}, err
		}
		if err := cash.Set(d, cash.Count(d)+n); err != nil {
			return types.CashCount{}, err
		}
	}
	return cash, nil
}

// printJSON writes v as indented JSON.
func printJSON(w io.Writer, v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Fprintln(w, string(output))
	return nil
}

// namesByID inverts the layout name → id map.
func namesByID(ids map[string]int) map[int]string {
	names := make(map[int]string, len(ids))
	for name, id := range ids {
		names[id] = name
	}
	return names
}
