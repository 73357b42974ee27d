package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rezonia/alanube-ecf/internal/form"
	"github.com/rezonia/alanube-ecf/internal/model"
)

var (
	documentKind string
	showDocument bool
	keyStyle     string
)

var validateCmd = &cobra.Command{
	Use:   "validate [files...]",
	Short: "Validate e-CF documents without submitting them",
	Long: `Validate one or more JSON documents against the DGII rules.

Checks performed:
  - Required fields, lengths, digit envelopes and choices
  - e-NCF, RNC, phone, email and geography codes
  - Item line amounts and totals reconciliation
  - Cancellation range quantities

Keys may be DGII names (eNCF, RNCEmisor) or attribute names (encf, rnc).

Examples:
  ecf-client validate invoice.json
  ecf-client validate documents/ --kind credit-note
  ecf-client validate invoice.json --show --keys alanube`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVar(&documentKind, "kind", "auto", "Document kind (auto, invoice, credit-note, cancellation)")
	validateCmd.Flags().BoolVar(&showDocument, "show", false, "Print the serialized document")
	validateCmd.Flags().StringVar(&keyStyle, "keys", "dgii", "Keys of the printed document (dgii, alanube)")
}

// ValidationResult holds the result of validating a single file
type ValidationResult struct {
	File     string    `json:"file"`
	Valid    bool      `json:"valid"`
	Kind     string    `json:"kind,omitempty"`
	Encf     string    `json:"encf,omitempty"`
	Field    string    `json:"field,omitempty"`
	Rule     string    `json:"rule,omitempty"`
	Error    string    `json:"error,omitempty"`
	Document form.Data `json:"document,omitempty"`
}

func runValidate(cmd *cobra.Command, args []string) error {
	files, err := collectFiles(args, ".json")
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no files found to validate")
	}

	keys, ok := form.ParseKeyStyle(keyStyle)
	if !ok {
		return fmt.Errorf("unknown key style %q", keyStyle)
	}

	results := make([]*ValidationResult, 0, len(files))
	allValid := true
	for _, file := range files {
		result := validateFile(file, keys)
		results = append(results, result)
		if !result.Valid {
			allValid = false
		}
	}

	if outputFormat == "json" {
		if err := printJSON(results); err != nil {
			return err
		}
	} else {
		for _, r := range results {
			if r.Valid {
				fmt.Printf("✓ %s: VALID (%s %s)\n", r.File, r.Kind, r.Encf)
				if r.Document != nil {
					if err := printJSON(r.Document); err != nil {
						return err
					}
				}
				continue
			}
			fmt.Printf("✗ %s: INVALID\n", r.File)
			if r.Field != "" {
				fmt.Printf("  Field: %s\n", r.Field)
			}
			if r.Rule != "" {
				fmt.Printf("  Rule:  %s\n", r.Rule)
			}
			fmt.Printf("  - %s\n", r.Error)
		}
	}

	if !allValid {
		return fmt.Errorf("validation failed for some files")
	}
	return nil
}

func validateFile(file string, keys form.KeyStyle) *ValidationResult {
	result := &ValidationResult{File: file}

	doc, err := decodeFile(file, documentKind)
	if err != nil {
		result.Error = err.Error()
		var verr *model.ValidationError
		if errors.As(err, &verr) {
			result.Field = verr.Field
			if verr.Form != "" && verr.Field != "" {
				result.Field = verr.Form + "." + verr.Field
			}
			result.Rule = verr.Rule
			result.Error = verr.Message
		}
		return result
	}

	result.Valid = true
	result.Kind = string(doc.Kind())
	result.Encf = doc.Number()
	if showDocument {
		data, err := doc.Serialize(form.WithKeys(keys))
		if err != nil {
			result.Valid = false
			result.Error = err.Error()
			return result
		}
		result.Document = data
	}
	return result
}
