//go:build js && wasm

package main

import (
	"encoding/json"
	"syscall/js"

	jahis "github.com/okkn/go-jahis-notebook"
)

// parseNotebook parses JAHIS wire text and returns its structure as JSON.
func parseNotebook(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return map[string]interface{}{
			"success": false,
			"error":   "missing notebook text argument",
		}
	}

	text := args[0].String()

	notebook, err := jahis.ParseMedicineNotebook(text)
	if err != nil {
		return map[string]interface{}{
			"success": false,
			"error":   err.Error(),
		}
	}

	jsonBytes, err := json.MarshalIndent(notebook, "", "  ")
	if err != nil {
		return map[string]interface{}{
			"success": false,
			"error":   "JSON encode failed: " + err.Error(),
		}
	}

	return map[string]interface{}{
		"success": true,
		"data":    string(jsonBytes),
		"summary": map[string]interface{}{
			"dispensingBlocks":  len(notebook.Dispensing),
			"familyPharmacists": len(notebook.FamilyPharmacists),
			"versionNumber":     notebook.Version.Number,
		},
	}
}

// serializeNotebook takes a JSON-encoded MedicineNotebook and returns
// its JAHIS wire-text serialization.
func serializeNotebook(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return map[string]interface{}{
			"success": false,
			"error":   "missing notebook JSON argument",
		}
	}

	var notebook jahis.MedicineNotebook
	if err := json.Unmarshal([]byte(args[0].String()), &notebook); err != nil {
		return map[string]interface{}{
			"success": false,
			"error":   "JSON decode failed: " + err.Error(),
		}
	}

	return map[string]interface{}{
		"success": true,
		"data":    notebook.Serialize(),
	}
}

func main() {
	c := make(chan struct{}, 0)

	js.Global().Set("parseNotebook", js.FuncOf(parseNotebook))
	js.Global().Set("serializeNotebook", js.FuncOf(serializeNotebook))
	js.Global().Set("wasmReady", true)

	println("go-jahis-notebook WASM module loaded")

	<-c
}
