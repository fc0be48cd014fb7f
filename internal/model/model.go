package model

import "time"

// Record is a schema-agnostic map for any dashboard dataset (users,
// transactions, bid logs). All records in one operation share a schema.
type Record map[string]interface{}

// DateFilter bounds a date dimension. Either side may be empty (no bound).
// Values are display-format dates (DD/MM/YYYY). An inverted range is not
// an error; it simply matches nothing.
type DateFilter struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// FilterSpec is a declarative filter over a record collection. An absent
// or empty value on any dimension means "do not filter on this dimension".
type FilterSpec struct {
	DateFilter    DateFilter        `json:"dateFilter"`
	StatusFilter  string            `json:"statusFilter"`
	SearchQuery   string            `json:"searchQuery"`
	CustomFilters map[string]string `json:"customFilters,omitempty"`
}

// FilterConfig names the record fields each filter dimension reads.
type FilterConfig struct {
	DateField    string   `json:"dateField"`
	StatusField  string   `json:"statusField"`
	SearchFields []string `json:"searchFields"`
}

// Segment names a cohort classification rule for user records.
type Segment string

const (
	SegmentAll          Segment = "all"
	SegmentPlayActive   Segment = "play-active"
	SegmentPlayInactive Segment = "play-inactive"
	SegmentBlockDevices Segment = "block-devices"
)

// SegmentConfig names the user record fields the classifier reads.
type SegmentConfig struct {
	LastActiveField    string `json:"lastActiveField"`
	StatusField        string `json:"statusField"`
	DeviceBlockedField string `json:"deviceBlockedField"`
	RegistrationField  string `json:"registrationField"`
}

// DefaultSegmentConfig matches the field names of the user dataset.
func DefaultSegmentConfig() SegmentConfig {
	return SegmentConfig{
		LastActiveField:    "lastActive",
		StatusField:        "status",
		DeviceBlockedField: "deviceBlocked",
		RegistrationField:  "registrationDate",
	}
}

// DefaultUserFilterConfig matches the field names of the user dataset.
func DefaultUserFilterConfig() FilterConfig {
	return FilterConfig{
		DateField:    "registrationDate",
		StatusField:  "status",
		SearchFields: []string{"userName", "mobile", "city"},
	}
}

// Page is one slice of a filtered collection plus paging metadata.
type Page struct {
	Items        []Record `json:"items"`
	CurrentPage  int      `json:"currentPage"`
	TotalPages   int      `json:"totalPages"`
	ItemsPerPage int      `json:"itemsPerPage"`
	TotalItems   int      `json:"totalItems"`
	HasNext      bool     `json:"hasNext"`
	HasPrev      bool     `json:"hasPrev"`
}

// Column is one entry of an export projection: the header text shown in
// the report and the record field it reads.
type Column struct {
	Header  string `json:"header"`
	DataKey string `json:"dataKey"`
}

// ExportSpec describes one report: title block, base filename, ordered
// column projection, and the (filtered, unpaginated) data to serialize.
type ExportSpec struct {
	Title    string   `json:"title"`
	Subtitle string   `json:"subtitle,omitempty"`
	Filename string   `json:"filename"`
	Columns  []Column `json:"columns,omitempty"`
	Data     []Record `json:"-"`
}

// ExportResult represents the outcome of a single export operation.
type ExportResult struct {
	ID          string    `json:"id"`
	Format      string    `json:"format"` // "csv", "pdf", "xlsx"
	FileName    string    `json:"file_name"`
	Path        string    `json:"path"`
	RecordCount int       `json:"record_count"`
	Success     bool      `json:"success"`
	Error       string    `json:"error,omitempty"`
	ExportedAt  time.Time `json:"exported_at"`
}

// RegistrationStats are the aggregate scalars shown on the summary tiles.
// Today/Yesterday compare display-date strings; TrailingWeek compares full
// dates over the last 7 days of the registration field.
type RegistrationStats struct {
	Today        int `json:"today"`
	Yesterday    int `json:"yesterday"`
	TrailingWeek int `json:"trailingWeek"`
}

// SegmentCounts are the cohort sizes the dashboard tiles cross-link to.
// The cohorts are independently evaluated and may overlap.
type SegmentCounts struct {
	All          int `json:"all"`
	PlayActive   int `json:"playActive"`
	PlayInactive int `json:"playInactive"`
	BlockDevices int `json:"blockDevices"`
}

// DashboardSummary is the raw summary object supplied by the data
// collaborator, reshaped by the summary package into display items.
type DashboardSummary struct {
	TotalUsers         int     `json:"totalUsers"`
	ActiveUsers        int     `json:"activeUsers"`
	TotalBids          int     `json:"totalBids"`
	TotalDeposits      float64 `json:"totalDeposits"`
	TotalWithdrawals   float64 `json:"totalWithdrawals"`
	TotalWinnings      float64 `json:"totalWinnings"`
	PendingWithdrawals int     `json:"pendingWithdrawals"`
}

// StatItem is one label/value pair rendered on a summary tile or exported
// in a summary report.
type StatItem struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// SavedFilter is a persisted filter preset for a resource type.
type SavedFilter struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	ResourceType string     `json:"resourceType"`
	Spec         FilterSpec `json:"spec"`
	IsDefault    bool       `json:"isDefault"`
	CreatedAt    time.Time  `json:"createdAt"`
}
