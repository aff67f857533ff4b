package redfish

// Log overwrite policies.
const (
	OverWritePolicyWrapsWhenFull   = "WrapsWhenFull"
	OverWritePolicyNeverOverWrites = "NeverOverWrites"
)

// LogService -.
type LogService struct {
	Resource
	MaxNumberOfRecords int     `json:"MaxNumberOfRecords"`
	OverWritePolicy    string  `json:"OverWritePolicy"`
	DateTime           string  `json:"DateTime,omitempty"`
	ServiceEnabled     bool    `json:"ServiceEnabled"`
	Status             *Status `json:"Status,omitempty"`
	Entries            Ref     `json:"Entries"`
	Oem                *Oem    `json:"Oem,omitempty"`
}

// LogEntry -.
type LogEntry struct {
	Resource
	EntryType       string        `json:"EntryType"`
	OemRecordFormat string        `json:"OemRecordFormat,omitempty"`
	Severity        string        `json:"Severity,omitempty"`
	Created         *string       `json:"Created,omitempty"`
	EntryCode       string        `json:"EntryCode,omitempty"`
	SensorType      string        `json:"SensorType,omitempty"`
	SensorNumber    *int          `json:"SensorNumber,omitempty"`
	Message         string        `json:"Message,omitempty"`
	MessageID       string        `json:"MessageId,omitempty"`
	MessageArgs     []string      `json:"MessageArgs,omitempty"`
	Links           LogEntryLinks `json:"Links"`
	Oem             *Oem          `json:"Oem,omitempty"`
}

// LogEntryLinks -.
type LogEntryLinks struct {
	OriginOfCondition *Ref `json:"OriginOfCondition,omitempty"`
}

// LogEntryCollection embeds the entries inline.
type LogEntryCollection struct {
	ODataContext string     `json:"@odata.context,omitempty"`
	ODataID      string     `json:"@odata.id"`
	ODataType    string     `json:"@odata.type"`
	Name         string     `json:"Name"`
	Description  string     `json:"Description,omitempty"`
	MembersCount int        `json:"Members@odata.count"`
	Members      []LogEntry `json:"Members"`
}
