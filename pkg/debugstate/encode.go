package debugstate

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/matzehuels/chartframe/pkg/errors"
)

// Snapshot encodings.
const (
	FormatJSON = "json"
	FormatBSON = "bson"
)

// MarshalJSON serializes a snapshot to pretty-printed JSON bytes.
func MarshalJSON(s Snapshot) ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}

// UnmarshalJSON deserializes JSON bytes into a snapshot.
func UnmarshalJSON(data []byte) (Snapshot, error) {
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return Snapshot{}, fmt.Errorf("unmarshal snapshot: %w", err)
	}
	return s, nil
}

// MarshalBSON serializes a snapshot to a BSON document.
func MarshalBSON(s Snapshot) ([]byte, error) {
	return bson.Marshal(s)
}

// UnmarshalBSON deserializes a BSON document into a snapshot.
func UnmarshalBSON(data []byte) (Snapshot, error) {
	var s Snapshot
	if err := bson.Unmarshal(data, &s); err != nil {
		return Snapshot{}, fmt.Errorf("unmarshal snapshot: %w", err)
	}
	return s, nil
}

// Encode serializes a snapshot in the given format.
func Encode(s Snapshot, format string) ([]byte, error) {
	switch format {
	case FormatJSON:
		return MarshalJSON(s)
	case FormatBSON:
		return MarshalBSON(s)
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown snapshot format %q", format)
}

// Decode deserializes a snapshot in the given format.
func Decode(data []byte, format string) (Snapshot, error) {
	switch format {
	case FormatJSON:
		return UnmarshalJSON(data)
	case FormatBSON:
		return UnmarshalBSON(data)
	}
	return Snapshot{}, errors.New(errors.ErrCodeInvalidFormat, "unknown snapshot format %q", format)
}

// FormatFor returns the encoding of a file: BSON for ".bson", JSON
// otherwise.
func FormatFor(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".bson") {
		return FormatBSON
	}
	return FormatJSON
}

// WriteFile writes a snapshot to a file, encoded by its extension.
func WriteFile(s Snapshot, path string) error {
	if err := errors.ValidatePath(path); err != nil {
		return err
	}
	data, err := Encode(s, FormatFor(path))
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadFile reads a snapshot from a file, decoded by its extension.
func ReadFile(path string) (Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Snapshot{}, fmt.Errorf("read %s: %w", path, err)
	}
	return Decode(data, FormatFor(path))
}
