package redfish

// SystemType represents the type of computer system.
type SystemType string

const (
	// SystemTypePhysical indicates a physical computer system.
	SystemTypePhysical SystemType = "Physical"
)

// ComputerSystem represents a Redfish Computer System entity.
type ComputerSystem struct {
	Resource
	SystemType         SystemType        `json:"SystemType"`
	Manufacturer       string            `json:"Manufacturer,omitempty"`
	Model              string            `json:"Model,omitempty"`
	SKU                string            `json:"SKU,omitempty"`
	SerialNumber       string            `json:"SerialNumber,omitempty"`
	PartNumber         string            `json:"PartNumber,omitempty"`
	UUID               string            `json:"UUID,omitempty"`
	HostName           string            `json:"HostName,omitempty"`
	AssetTag           string            `json:"AssetTag,omitempty"`
	BiosVersion        string            `json:"BiosVersion,omitempty"`
	IndicatorLED       string            `json:"IndicatorLED,omitempty"`
	PowerState         string            `json:"PowerState,omitempty"`
	Status             *Status           `json:"Status,omitempty"`
	Boot               *Boot             `json:"Boot,omitempty"`
	ProcessorSummary   *ProcessorSummary `json:"ProcessorSummary,omitempty"`
	MemorySummary      *MemorySummary    `json:"MemorySummary,omitempty"`
	Processors         Ref               `json:"Processors"`
	SimpleStorage      Ref               `json:"SimpleStorage"`
	Storage            Ref               `json:"Storage"`
	EthernetInterfaces Ref               `json:"EthernetInterfaces"`
	LogServices        Ref               `json:"LogServices"`
	Bios               *Ref              `json:"Bios,omitempty"`
	SecureBoot         *Ref              `json:"SecureBoot,omitempty"`
	Links              SystemLinks       `json:"Links"`
	Actions            SystemActions     `json:"Actions"`
}

// Boot -.
type Boot struct {
	BootSourceOverrideEnabled string   `json:"BootSourceOverrideEnabled,omitempty"`
	BootSourceOverrideTarget  string   `json:"BootSourceOverrideTarget,omitempty"`
	BootSourceAllowableValues []string `json:"BootSourceOverrideTarget@Redfish.AllowableValues,omitempty"`
	BootSourceOverrideMode    string   `json:"BootSourceOverrideMode,omitempty"`
}

// ProcessorSummary -.
type ProcessorSummary struct {
	Count  int     `json:"Count"`
	Model  string  `json:"Model,omitempty"`
	Status *Status `json:"Status,omitempty"`
}

// MemorySummary -.
type MemorySummary struct {
	TotalSystemMemoryGiB float64 `json:"TotalSystemMemoryGiB"`
	Status               *Status `json:"Status,omitempty"`
}

// SystemLinks -.
type SystemLinks struct {
	Chassis   []Ref `json:"Chassis"`
	ManagedBy []Ref `json:"ManagedBy"`
}

// SystemActions -.
type SystemActions struct {
	Reset     ResetAction `json:"#ComputerSystem.Reset"`
	BootImage ActionLink  `json:"#RackHD.BootImage"`
}

// ResetAction -.
type ResetAction struct {
	Target          string   `json:"target"`
	AllowableValues []string `json:"ResetType@Redfish.AllowableValues"`
}

// ActionLink -.
type ActionLink struct {
	Target string `json:"target"`
}

// ActionInfo describes the parameters an action accepts.
type ActionInfo struct {
	Resource
	Parameters []ActionParameter `json:"Parameters"`
}

// ActionParameter -.
type ActionParameter struct {
	Name            string   `json:"Name"`
	Required        bool     `json:"Required"`
	DataType        string   `json:"DataType"`
	AllowableValues []string `json:"AllowableValues,omitempty"`
}

// Processor -.
type Processor struct {
	Resource
	Socket                string                 `json:"Socket,omitempty"`
	ProcessorType         string                 `json:"ProcessorType,omitempty"`
	ProcessorArchitecture string                 `json:"ProcessorArchitecture,omitempty"`
	InstructionSet        string                 `json:"InstructionSet,omitempty"`
	Manufacturer          string                 `json:"Manufacturer,omitempty"`
	Model                 string                 `json:"Model,omitempty"`
	MaxSpeedMHz           *int                   `json:"MaxSpeedMHz,omitempty"`
	TotalCores            *int                   `json:"TotalCores,omitempty"`
	TotalThreads          *int                   `json:"TotalThreads,omitempty"`
	ProcessorID           map[string]interface{} `json:"ProcessorId,omitempty"`
	Status                *Status                `json:"Status,omitempty"`
}

// Bios -.
type Bios struct {
	Resource
	AttributeRegistry string                 `json:"AttributeRegistry,omitempty"`
	Attributes        map[string]interface{} `json:"Attributes"`
	Settings          *SettingsObject        `json:"@Redfish.Settings,omitempty"`
	Actions           *BiosActions           `json:"Actions,omitempty"`
}

// SettingsObject -.
type SettingsObject struct {
	SettingsObject Ref `json:"SettingsObject"`
}

// BiosActions -.
type BiosActions struct {
	ResetBios      ActionLink `json:"#Bios.ResetBios"`
	ChangePassword ActionLink `json:"#Bios.ChangePassword"`
}

// SecureBoot -.
type SecureBoot struct {
	Resource
	SecureBootEnable      bool   `json:"SecureBootEnable"`
	SecureBootCurrentBoot string `json:"SecureBootCurrentBoot,omitempty"`
}
