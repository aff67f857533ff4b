package redfish

// SimpleStorage -.
type SimpleStorage struct {
	Resource
	UefiDevicePath string          `json:"UefiDevicePath,omitempty"`
	Devices        []StorageDevice `json:"Devices"`
	Status         *Status         `json:"Status,omitempty"`
}

// StorageDevice is one disk attached to a simple storage controller.
type StorageDevice struct {
	Name          string  `json:"Name"`
	Manufacturer  string  `json:"Manufacturer,omitempty"`
	Model         string  `json:"Model,omitempty"`
	CapacityBytes *int64  `json:"CapacityBytes,omitempty"`
	Oem           *Oem    `json:"Oem,omitempty"`
	Status        *Status `json:"Status,omitempty"`
}

// Oem carries vendor extensions.
type Oem map[string]interface{}

// Storage -.
type Storage struct {
	Resource
	StorageControllers []StorageController `json:"StorageControllers"`
	Drives             []Ref               `json:"Drives"`
	Volumes            *Ref                `json:"Volumes,omitempty"`
	Oem                *Oem                `json:"Oem,omitempty"`
	Status             *Status             `json:"Status,omitempty"`
}

// StorageController -.
type StorageController struct {
	MemberID                     string   `json:"MemberId"`
	Name                         string   `json:"Name,omitempty"`
	Manufacturer                 string   `json:"Manufacturer,omitempty"`
	Model                        string   `json:"Model,omitempty"`
	FirmwareVersion              string   `json:"FirmwareVersion,omitempty"`
	SpeedGbps                    *float64 `json:"SpeedGbps,omitempty"`
	SupportedDeviceProtocols     []string `json:"SupportedDeviceProtocols,omitempty"`
	SupportedControllerProtocols []string `json:"SupportedControllerProtocols,omitempty"`
	Status                       *Status  `json:"Status,omitempty"`
}

// Drive -.
type Drive struct {
	Resource
	Manufacturer     string        `json:"Manufacturer,omitempty"`
	Model            string        `json:"Model,omitempty"`
	SerialNumber     string        `json:"SerialNumber,omitempty"`
	PartNumber       string        `json:"PartNumber,omitempty"`
	Revision         string        `json:"Revision,omitempty"`
	CapacityBytes    *int64        `json:"CapacityBytes,omitempty"`
	BlockSizeBytes   *int64        `json:"BlockSizeBytes,omitempty"`
	MediaType        string        `json:"MediaType,omitempty"`
	Protocol         string        `json:"Protocol,omitempty"`
	RotationSpeedRPM *int          `json:"RotationSpeedRPM,omitempty"`
	HotspareType     string        `json:"HotspareType,omitempty"`
	Status           *Status       `json:"Status,omitempty"`
	Links            *DriveLinks   `json:"Links,omitempty"`
	Actions          *DriveActions `json:"Actions,omitempty"`
}

// DriveLinks -.
type DriveLinks struct {
	Volumes []Ref `json:"Volumes"`
}

// DriveActions -.
type DriveActions struct {
	AddHotspare ActionLink `json:"#Drive.AddHotspare"`
}

// Volume -.
type Volume struct {
	Resource
	CapacityBytes  *int64      `json:"CapacityBytes,omitempty"`
	VolumeType     string      `json:"VolumeType,omitempty"`
	Encrypted      bool        `json:"Encrypted"`
	BlockSizeBytes *int64      `json:"BlockSizeBytes,omitempty"`
	Status         *Status     `json:"Status,omitempty"`
	Links          VolumeLinks `json:"Links"`
}

// VolumeLinks -.
type VolumeLinks struct {
	Drives []Ref `json:"Drives"`
}
