package main

import (
	"fmt"
	"mime"
	"path/filepath"

	"github.com/go-andiamo/splitter"
	"github.com/sgaunet/webui-config/pkg/filetypes"
)

type checkResult struct {
	name string
	err  error
}

// splitFileList splits a comma separated list of file names. Names
// containing commas may be quoted.
func splitFileList(list string) ([]string, error) {
	listSplitter, err := splitter.NewSplitter(',', splitter.SingleQuotes, splitter.DoubleQuotes)
	if err != nil {
		return nil, fmt.Errorf("failed to create list splitter: %w", err)
	}
	trimmer := splitter.Trim(" '\"")
	parts, err := listSplitter.Split(list, trimmer)
	if err != nil {
		return nil, fmt.Errorf("failed to parse list '%s': %w", list, err)
	}
	names := parts[:0]
	for _, p := range parts {
		if p != "" {
			names = append(names, p)
		}
	}
	return names, nil
}

// checkFiles reports, for each file of the list, whether it would be accepted
// for upload. The MIME type is guessed from the extension, as a browser does.
func checkFiles(list string) ([]checkResult, error) {
	names, err := splitFileList(list)
	if err != nil {
		return nil, err
	}
	results := make([]checkResult, 0, len(names))
	for _, name := range names {
		results = append(results, checkResult{
			name: name,
			err:  filetypes.Check(name, mime.TypeByExtension(filepath.Ext(name))),
		})
	}
	return results, nil
}
