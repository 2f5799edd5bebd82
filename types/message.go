package types

type MessageType string

const (
	LogMessage              MessageType = "LOG"
	ConnectionStatusMessage MessageType = "CONNECTION_STATUS"
	CatalogMessage          MessageType = "CATALOG"
	SpecMessage             MessageType = "SPEC"
	SummaryMessage          MessageType = "SUMMARY"
)

type ConnectionStatus string

const (
	ConnectionSucceed ConnectionStatus = "SUCCEEDED"
	ConnectionFailed  ConnectionStatus = "FAILED"
)

// Message is a dto for the tool's machine-readable output rows
type Message struct {
	Type             MessageType    `json:"type"`
	ConnectionStatus *StatusRow     `json:"connectionStatus,omitempty"`
	Catalog          *CatalogRow    `json:"catalog,omitempty"`
	Spec             map[string]any `json:"spec,omitempty"`
	Summary          *SummaryRow    `json:"summary,omitempty"`
}

// StatusRow is a dto for check command result serialization
type StatusRow struct {
	Status  ConnectionStatus `json:"status,omitempty"`
	Message string           `json:"message,omitempty"`
}

// CatalogRow describes a catalogue file: its column layout, row count
// and the header keys it carries.
type CatalogRow struct {
	Columns    []Column `json:"columns"`
	RowCount   int      `json:"row_count"`
	HeaderKeys []string `json:"header_keys,omitempty"`
}

// SummaryRow reports one filtering run.
type SummaryRow struct {
	RowsTotal  int     `json:"rows_total"`
	RowsKept   int     `json:"rows_kept"`
	Capped     bool    `json:"capped"`
	Threshold  float64 `json:"threshold"`
	OutputPath string  `json:"output_path"`
}
