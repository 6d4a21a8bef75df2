package taxonomy

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a YAML taxonomy and returns it with the raw bytes
// KnownFields(true): 오타/미사용 필드는 즉시 실패
func Load(path string) (*Taxonomy, []byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read taxonomy: %w", err)
	}

	t, err := Parse(data)
	if err != nil {
		return nil, data, err
	}

	return t, data, nil
}

// Parse decodes and validates a YAML taxonomy document
func Parse(data []byte) (*Taxonomy, error) {
	var raw Taxonomy
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode taxonomy: %w", err)
	}

	if err := Validate(&raw); err != nil {
		return nil, err
	}

	return New(raw.Version, raw.Categories), nil
}

// LoadOrBuiltin loads path when set, otherwise returns the built-in table
func LoadOrBuiltin(path string) (*Taxonomy, error) {
	if path == "" {
		return Builtin(), nil
	}

	t, _, err := Load(path)
	return t, err
}

// Hash generates a SHA256 hash of the canonical JSON form
// struct 기반 직렬화로 해시 재현성 보장
func Hash(t *Taxonomy) (string, error) {
	jsonBytes, err := json.Marshal(t)
	if err != nil {
		return "", err
	}

	sum := sha256.Sum256(jsonBytes)
	return hex.EncodeToString(sum[:]), nil
}
