package cli

import (
	"encoding/json"
	"fmt"
	"os"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool
}

// HumanPrinter is implemented by results that know how to print themselves
type HumanPrinter interface {
	Human() string
}

// Success outputs successful operation result
func (f *OutputFormatter) Success(data any) error {
	if f.Quiet {
		// Extract ID if possible
		if idGetter, ok := data.(interface{ GetID() int }); ok {
			fmt.Printf("%d\n", idGetter.GetID())
			return nil
		}
		if idsGetter, ok := data.(interface{ GetIDs() []int }); ok {
			for _, id := range idsGetter.GetIDs() {
				fmt.Printf("%d\n", id)
			}
			return nil
		}
	}

	if f.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success": true,
			"data":    data,
		})
	}

	// Human-readable format
	return f.prettyPrint(data)
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion outputs error information with an optional suggestion
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	if f.JSON {
		errData := map[string]any{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success": false,
			"error":   errData,
		})
	}

	// Human-readable error
	fmt.Fprintf(os.Stderr, "❌ Error: %s\n", message)
	if suggestion != "" {
		fmt.Fprintf(os.Stderr, "💡 Suggestion: %s\n", suggestion)
	}
	return nil
}

// prettyPrint formats data for human-readable output
func (f *OutputFormatter) prettyPrint(data any) error {
	if p, ok := data.(HumanPrinter); ok {
		fmt.Print(p.Human())
		return nil
	}
	if s, ok := data.(string); ok {
		fmt.Println(s)
		return nil
	}
	fmt.Printf("%+v\n", data)
	return nil
}

// ReportedError is an error that has already been shown to the user
type ReportedError struct {
	Err error
}

func (e *ReportedError) Error() string { return e.Err.Error() }

func (e *ReportedError) Unwrap() error { return e.Err }

// Report prints err through the formatter and marks it as reported
func Report(f *OutputFormatter, err error) error {
	if fmtErr := f.Error(ErrorCode(err), err.Error()); fmtErr != nil {
		fmt.Fprintf(os.Stderr, "Error formatting error message: %v\n", fmtErr)
	}
	return &ReportedError{Err: err}
}

// Silent is a result that prints nothing outside JSON mode
type Silent struct{}

// Human implements HumanPrinter
func (Silent) Human() string { return "" }
