package program

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// The structured program fields (objectives, KPI definitions, the current
// document set) are stored as JSON-serialized TEXT columns. Each list type
// round-trips through driver.Valuer / sql.Scanner so repositories can treat
// them as plain fields.

type KPI struct {
	Name   string `json:"name"`
	Target string `json:"target"`
}

// DocumentRef is one entry of a program's current document set. StoredName is
// the opaque handle issued by the file-storage collaborator; the workflow core
// never touches file bytes.
type DocumentRef struct {
	Category     string `json:"category"`
	OriginalName string `json:"original_name"`
	StoredName   string `json:"stored_name"`
}

type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(src any) error { return scanJSON(src, l) }

type KPIList []KPI

func (l KPIList) Value() (driver.Value, error) {
	if l == nil {
		l = KPIList{}
	}
	return json.Marshal(l)
}

func (l *KPIList) Scan(src any) error { return scanJSON(src, l) }

type DocumentList []DocumentRef

func (l DocumentList) Value() (driver.Value, error) {
	if l == nil {
		l = DocumentList{}
	}
	return json.Marshal(l)
}

func (l *DocumentList) Scan(src any) error { return scanJSON(src, l) }

func scanJSON(src, dst any) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		if len(v) == 0 {
			return nil
		}
		return json.Unmarshal(v, dst)
	case string:
		if v == "" {
			return nil
		}
		return json.Unmarshal([]byte(v), dst)
	default:
		return fmt.Errorf("unsupported column type %T", src)
	}
}
