package entity

// NativeSelEntry is one row of the IPMI System Event Log as cached by the sel poller.
type NativeSelEntry struct {
	LogID        string `mapstructure:"logId"`
	Date         string `mapstructure:"date"`
	Time         string `mapstructure:"time"`
	SensorType   string `mapstructure:"sensorType"`
	SensorNumber string `mapstructure:"sensorNumber"`
	Value        string `mapstructure:"value"`
	Event        string `mapstructure:"event"`
}

// SelEntry is the Redfish-shaped projection of a NativeSelEntry.
type SelEntry struct {
	LogID        string
	Timestamp    *string
	SensorType   string
	Value        string
	Event        string
	SensorNumber int
	Origin       *string
}

// SelInformation is the selInformation poller payload.
type SelInformation struct {
	AllocUnits    string `mapstructure:"# of Alloc Units"`
	Overflow      string `mapstructure:"Overflow"`
	LastAddTime   string `mapstructure:"Last Add Time"`
	Version       string `mapstructure:"Version"`
	Entries       string `mapstructure:"Entries"`
	FreeSpace     string `mapstructure:"Free Space"`
	LastEraseTime string `mapstructure:"Last Del Time"`
}

// WsmanSelEntry is a Dell iDRAC SEL record as returned by the WSMAN service.
type WsmanSelEntry struct {
	CreationTimeStamp string `json:"creationTimeStamp"`
	ElementName       string `json:"elementName"`
	InstanceID        string `json:"instanceID"`
	LogInstanceID     string `json:"logInstanceID"`
	LogName           string `json:"logName"`
	PerceivedSeverity string `json:"perceivedSeverity"`
	RecordData        string `json:"recordData"`
	RecordFormat      string `json:"recordFormat"`
	RecordID          string `json:"recordID"`
}

// WsmanLcEntry is a Dell Lifecycle Controller log record.
type WsmanLcEntry struct {
	RecordID          int    `json:"recordId"`
	LogName           string `json:"logName"`
	CreationTimeStamp string `json:"creationTimeStamp"`
	Message           string `json:"message"`
	Severity          string `json:"severity"`
	Category          string `json:"category"`
	MessageID         string `json:"messageId"`
	ElementName       string `json:"elementName"`
	InstanceID        string `json:"instanceId"`
	LogInstanceID     string `json:"logInstanceId"`
	Comment           string `json:"comment"`
	AgentID           string `json:"agentId"`
	Fqdd              string `json:"fqdd"`
	MessageArguments  string `json:"messageArguments"`
	SequenceNumber    int    `json:"sequenceNumber"`
}
