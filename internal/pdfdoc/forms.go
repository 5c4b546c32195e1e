package pdfdoc

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/syedhassan0709/ai-nutrition-training-plan-generator/internal/domain"
)

// namedValue is the name/value pair shared by most widget kinds in the
// form-export JSON.
type namedValue struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// formExport mirrors the slice of pdfcpu's form-export JSON this reader
// consumes: field names and values per widget type, everything else ignored.
type formExport struct {
	Forms []struct {
		TextFields  []namedValue `json:"textfield"`
		DateFields  []namedValue `json:"datefield"`
		RadioGroups []namedValue `json:"radiobuttongroup"`
		ComboBoxes  []namedValue `json:"combobox"`
		CheckBoxes  []struct {
			Name  string `json:"name"`
			Value bool   `json:"value"`
		} `json:"checkbox"`
		ListBoxes []struct {
			Name   string   `json:"name"`
			Values []string `json:"values"`
		} `json:"listbox"`
	} `json:"forms"`
}

// exportFormFields pulls populated AcroForm widget values out of a PDF.
// Documents without a form layer yield nil, and form trouble never fails the
// document: the text scan stays the primary extraction channel.
func exportFormFields(path string) map[string]domain.FormField {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	var buf bytes.Buffer
	if err := api.ExportForm(f, &buf, path, nil); err != nil {
		return nil
	}
	return parseFormExport(buf.Bytes())
}

func parseFormExport(data []byte) map[string]domain.FormField {
	var export formExport
	if err := json.Unmarshal(data, &export); err != nil {
		return nil
	}

	fields := map[string]domain.FormField{}
	put := func(name, value, typ string) {
		name = strings.TrimSpace(name)
		value = strings.TrimSpace(value)
		if name == "" || value == "" {
			return
		}
		fields[name] = domain.FormField{Value: value, Type: typ}
	}

	for _, form := range export.Forms {
		for _, fld := range form.TextFields {
			put(fld.Name, fld.Value, "text")
		}
		for _, fld := range form.DateFields {
			put(fld.Name, fld.Value, "date")
		}
		for _, fld := range form.RadioGroups {
			put(fld.Name, fld.Value, "radio")
		}
		for _, fld := range form.ComboBoxes {
			put(fld.Name, fld.Value, "combo")
		}
		for _, fld := range form.CheckBoxes {
			// Unchecked boxes are unpopulated fields, same as empty text.
			if fld.Value {
				put(fld.Name, "Yes", "checkbox")
			}
		}
		for _, fld := range form.ListBoxes {
			put(fld.Name, strings.Join(fld.Values, ", "), "list")
		}
	}

	if len(fields) == 0 {
		return nil
	}
	return fields
}
