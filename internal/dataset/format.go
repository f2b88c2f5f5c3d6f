package dataset

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"portfolioData/internal/csv"
	"portfolioData/internal/models"

	"github.com/ugorji/go/codec"
	"go.mongodb.org/mongo-driver/bson"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatJSON    Format = "json"
	FormatCSV     Format = "csv"
	FormatYAML    Format = "yaml"
	FormatMsgpack Format = "msgpack"
	FormatBSON    Format = "bson"
)

var Formats = []Format{FormatJSON, FormatCSV, FormatYAML, FormatMsgpack, FormatBSON}

func (f Format) Valid() bool {
	for _, known := range Formats {
		if f == known {
			return true
		}
	}
	return false
}

func (f Format) Extension() string {
	switch f {
	case FormatMsgpack:
		return "msgpack"
	case FormatYAML:
		return "yaml"
	default:
		return string(f)
	}
}

func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".csv":
		return FormatCSV, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".msgpack", ".mp":
		return FormatMsgpack, nil
	case ".bson":
		return FormatBSON, nil
	}
	return "", fmt.Errorf("cannot detect format from extension '%s'", filepath.Ext(path))
}

func Encode(w io.Writer, records []models.Record, format Format) error {
	switch format {
	case FormatJSON:
		data, err := MarshalJSON(records)
		if err != nil {
			return err
		}
		_, err = w.Write(append(data, '\n'))
		return err
	case FormatCSV:
		return csv.Encode(w, records)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(records); err != nil {
			return fmt.Errorf("failed to marshal to YAML: %w", err)
		}
		return enc.Close()
	case FormatMsgpack:
		var mh codec.MsgpackHandle
		mh.WriteExt = true
		if err := codec.NewEncoder(w, &mh).Encode(records); err != nil {
			return fmt.Errorf("failed to marshal to msgpack: %w", err)
		}
		return nil
	case FormatBSON:
		for _, r := range records {
			data, err := bson.Marshal(r)
			if err != nil {
				return fmt.Errorf("failed to marshal to BSON: %w", err)
			}
			if _, err := w.Write(data); err != nil {
				return fmt.Errorf("failed to write BSON data: %w", err)
			}
		}
		return nil
	}
	return fmt.Errorf("invalid format: %s", format)
}

func Decode(data []byte, format Format) ([]models.Record, error) {
	var records []models.Record

	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &records); err != nil {
			return nil, fmt.Errorf("failed to decode JSON: %w", err)
		}
	case FormatCSV:
		return csv.Decode(bytes.NewReader(data))
	case FormatYAML:
		if err := yaml.Unmarshal(data, &records); err != nil {
			return nil, fmt.Errorf("failed to decode YAML: %w", err)
		}
	case FormatMsgpack:
		var mh codec.MsgpackHandle
		if err := codec.NewDecoderBytes(data, &mh).Decode(&records); err != nil {
			return nil, fmt.Errorf("failed to decode msgpack: %w", err)
		}
	case FormatBSON:
		for len(data) > 0 {
			if len(data) < 4 {
				return nil, fmt.Errorf("truncated BSON document")
			}
			size := int(binary.LittleEndian.Uint32(data[:4]))
			if size < 5 || size > len(data) {
				return nil, fmt.Errorf("invalid BSON document size %d", size)
			}

			var r models.Record
			if err := bson.Unmarshal(data[:size], &r); err != nil {
				return nil, fmt.Errorf("failed to unmarshal BSON: %w", err)
			}
			records = append(records, r)
			data = data[size:]
		}
	default:
		return nil, fmt.Errorf("invalid format: %s", format)
	}

	for i := range records {
		if records[i].Assets == nil {
			records[i].Assets = []string{}
		}
	}
	return records, nil
}
