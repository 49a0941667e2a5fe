package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	formatText = "text"
	formatJSON = "json"
)

// writeText writes one line per diagnostic in the form "path:line:col: message".
func writeText(w io.Writer, results []*fileResult, noColor bool) error {
	location := color.New(color.Bold)
	message := color.New(color.FgRed)
	if noColor {
		location.DisableColor()
		message.DisableColor()
	}

	for _, result := range results {
		for _, diag := range result.Errors {
			var prefix string
			if len(diag.Locations) > 0 {
				prefix = fmt.Sprintf("%v:%v:%v:", result.File, diag.Locations[0].Line, diag.Locations[0].Column)
			} else {
				prefix = result.File + ":"
			}
			if _, err := fmt.Fprintf(w, "%v %v\n", location.Sprint(prefix), message.Sprint(diag.Message)); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeJSON(w io.Writer, results []*fileResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}
