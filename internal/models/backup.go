package models

import "encoding/json"

type Backup struct {
	Name      string          `json:"name"`
	Data      json.RawMessage `json:"data"`
	Timestamp string          `json:"timestamp"`
	Version   string          `json:"version"`
	Metadata  BackupMetadata  `json:"metadata"`
}

type BackupMetadata struct {
	RecordCount int `json:"recordCount"`
	Size        int `json:"size"`
}
