/*
History Module - Calculation History Management
===============================================

This module provides persistent storage and retrieval of calculation history
using JSON serialization. All calculations are stored in a local file and
can be displayed to the user for reference.

The history system:
- Automatically saves each successful calculation
- Persists data across program sessions
- Displays results in reverse chronological order (newest first)
- Handles file I/O errors gracefully
- Uses structured JSON format for data integrity

File format: Array of Entry objects in JSON format
Location: history.json in the current working directory
*/

package history

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"axion/unit"
)

// JsonFloat renders Inf/NaN as readable strings instead of failing
// json.Marshal, which rejects non-finite float64 values outright.
type JsonFloat float64

func (f JsonFloat) MarshalJSON() ([]byte, error) {
	v := float64(f)

	if math.IsInf(v, 1) {
		return json.Marshal("+∞")
	}
	if math.IsInf(v, -1) {
		return json.Marshal("-∞")
	}
	if math.IsNaN(v) {
		return json.Marshal("NaN")
	}
	return json.Marshal(v)
}

// Entry represents a single evaluated line: its source expression, the
// resulting scalar, and the unit that scalar is expressed in.
type Entry struct {
	Expression string    `json:"expression"`
	Result     JsonFloat `json:"result"`
	Unit       string    `json:"unit"`
}

const historyFile = "history.json"

// Add appends a new calculation to the persistent history file. Handles
// file creation and preserves existing entries; the whole file is
// rewritten in place on each call.
func Add(input string, result float64, u unit.Unit) error {
	var records []Entry

	data, err := os.ReadFile(historyFile)
	if err != nil {
		if !os.IsNotExist(err) {
			return err
		}
		data = []byte{}
	}

	if len(data) > 0 {
		if err := json.Unmarshal(data, &records); err != nil {
			return err
		}
	}

	records = append(records, Entry{
		Expression: input,
		Result:     JsonFloat(result),
		Unit:       unit.Format(u),
	})

	updated, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(historyFile, updated, 0644)
}

// Show displays the complete calculation history, newest first.
func Show() error {
	var records []Entry

	data, err := os.ReadFile(historyFile)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Println("no history data")
			return nil
		}
		return err
	}

	if err := json.Unmarshal(data, &records); err != nil {
		return err
	}

	if len(records) == 0 {
		fmt.Println("no history data")
		return nil
	}

	for i := len(records) - 1; i >= 0; i-- {
		e := records[i]
		fmt.Printf("------------------------------------------------\n")
		fmt.Printf(" Expression : %s\n", e.Expression)
		fmt.Printf(" Result     : %g%s\n", float64(e.Result), e.Unit)
		fmt.Printf("------------------------------------------------\n\n")
	}

	return nil
}
