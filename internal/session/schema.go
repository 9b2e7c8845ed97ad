package session

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed session.schema.json
var snapshotSchemaJSON string

var (
	snapshotSchemaOnce sync.Once
	snapshotSchema     *jsonschema.Schema
	snapshotSchemaErr  error
)

func compiledSnapshotSchema() (*jsonschema.Schema, error) {
	snapshotSchemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("session.schema.json", strings.NewReader(snapshotSchemaJSON)); err != nil {
			snapshotSchemaErr = err
			return
		}
		snapshotSchema, snapshotSchemaErr = compiler.Compile("session.schema.json")
	})
	return snapshotSchema, snapshotSchemaErr
}

// validateSnapshot checks a raw snapshot document against the embedded
// schema. Both Save and Load run this, so a malformed file is rejected
// before it can corrupt a session.
func validateSnapshot(raw []byte) error {
	schema, err := compiledSnapshotSchema()
	if err != nil {
		return fmt.Errorf("failed to compile session schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return fmt.Errorf("session snapshot is not valid JSON: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("session snapshot validation failed: %w", err)
	}
	return nil
}
