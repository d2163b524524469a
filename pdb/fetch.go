package pdb

import (
	"fmt"
	"io"
	"net/http"
	"time"
)

// Fetch downloads a structure from RCSB by its 4-letter code and parses it.
func Fetch(id string) (*Structure, error) {
	url := "https://files.rcsb.org/download/" + id + ".pdb"

	client := http.Client{
		Timeout: 120 * time.Second,
	}

	res, err := client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("download PDB file: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode != 200 {
		return nil, fmt.Errorf("download PDB file: HTTP status code %d", res.StatusCode)
	}

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("download PDB file: %w", err)
	}

	return ParseStructure(id, raw)
}
